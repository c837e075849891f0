package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestApp_SignupTakenUsername(t *testing.T) {
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })
	answers := []string{"Alice Again", "alice"}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte("pw"), nil }

	env := newTestEnv(t)
	a := env.app(t, "")
	require.ErrorIs(t, a.Signup(context.Background()), client.ErrConflict)
	assert.Contains(t, env.out.String(), "! The username is already taken. Please choose a different one.\n")
}

func TestApp_SignupLogsIn(t *testing.T) {
	stubInputs(t, "bob", []byte("pw"))

	env := newTestEnv(t)
	a := env.app(t, "")
	require.NoError(t, a.Signup(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(bob)", a.getStatus())
	assert.Equal(t, 1, env.srv.Calls("signup"))
}
