package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/client/fakeapi"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, srv *fakeapi.Server, opts ...Option) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(srv.URL, 5*time.Second, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.org", time.Second)
	require.Error(t, err)

	_, err = NewHTTPClient("://nope", time.Second)
	require.Error(t, err)
}

func TestLogin_Success_ReturnsUserWithToken(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	created := time.Date(2023, 11, 2, 8, 0, 0, 0, time.UTC)
	srv.AddUser("alice", "pw", "Alice", created)

	c := newTestClient(t, srv)
	u, err := c.Login(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "2023-11-02T08:00:00Z", u.CreatedAt)
	assert.NotEmpty(t, u.LoginToken)
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	srv.AddUser("alice", "pw", "Alice", time.Now())

	c := newTestClient(t, srv)
	_, err := c.Login(context.Background(), "alice", []byte("nope"))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, ReasonUnauthorized, ReasonOf(err))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "login", apiErr.Op)
	assert.Equal(t, "Invalid password.", apiErr.Message)
}

func TestSignup_Success_And_Conflict(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	c := newTestClient(t, srv)
	ctx := context.Background()

	u, err := c.Signup(ctx, "bob", []byte("pw"), "Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "Bob", u.Name)
	assert.NotEmpty(t, u.LoginToken)

	_, err = c.Signup(ctx, "bob", []byte("other"), "Bobby")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, ReasonConflict, ReasonOf(err))
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestLoginViaStoredCredentials(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	srv.AddUser("alice", "pw", "Alice", time.Now())
	c := newTestClient(t, srv)
	ctx := context.Background()

	token := srv.IssueToken("alice")
	u, err := c.LoginViaStoredCredentials(ctx, token, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, token, u.LoginToken)

	_, err = c.LoginViaStoredCredentials(ctx, "garbage", "alice")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.LoginViaStoredCredentials(ctx, srv.IssueToken("mallory"), "alice")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetStories(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	srv.SetStories([]models.Story{
		{StoryID: "s1", Title: "Structured logging", Author: "Jonathan", URL: "https://go.dev/blog/slog"},
		{StoryID: "s2", Title: "Range functions", Author: "Ian", URL: "https://go.dev/blog/range-functions"},
	})
	c := newTestClient(t, srv)

	stories, err := c.GetStories(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "s1", stories[0].StoryID)
	assert.Equal(t, "go.dev", stories[1].HostName())
}

func TestServerError_MapsToUnavailable(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	srv.FailWith("login", http.StatusServiceUnavailable)
	c := newTestClient(t, srv)

	_, err := c.Login(context.Background(), "alice", []byte("pw"))
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, ReasonUnavailable, ReasonOf(err))
}

func TestUnexpectedStatus_MapsToUnknown(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	c := newTestClient(t, srv)

	// unknown user: the API answers 404, which is not a credentials failure
	_, err := c.Login(context.Background(), "ghost", []byte("pw"))
	require.Error(t, err)
	assert.Equal(t, ReasonUnknown, ReasonOf(err))
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := fakeapi.New()
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, time.Second)
	require.NoError(t, err)

	_, err = c.GetStories(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContext_IsNotUnavailable(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()
	c := newTestClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetStories(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ReasonUnknown, ReasonOf(err))
}

func TestRequestID_IsSentOnEveryCall(t *testing.T) {
	srv := fakeapi.New()
	defer srv.Close()

	n := 0
	c := newTestClient(t, srv, WithRequestIDFunc(func() string {
		n++
		return "req-" + string(rune('0'+n))
	}))
	ctx := context.Background()

	_, _ = c.GetStories(ctx)
	_, _ = c.GetStories(ctx)

	assert.Equal(t, []string{"req-1", "req-2"}, srv.RequestIDs())
}

func TestMalformedResponse_IsUnknown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	c, err := NewHTTPClient(ts.URL, time.Second, WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	_, err = c.GetStories(context.Background())
	require.Error(t, err)
	assert.Equal(t, ReasonUnknown, ReasonOf(err))
}

func TestReasonOf_BareSentinels(t *testing.T) {
	assert.Equal(t, ReasonUnauthorized, ReasonOf(ErrUnauthorized))
	assert.Equal(t, ReasonConflict, ReasonOf(ErrConflict))
	assert.Equal(t, ReasonUnavailable, ReasonOf(ErrUnavailable))
	assert.Equal(t, ReasonUnknown, ReasonOf(errors.New("other")))
	assert.Equal(t, "conflict", ReasonConflict.String())
}

func TestError_Message(t *testing.T) {
	e := &Error{Op: "signup", Reason: ReasonConflict, Status: 409, Message: "taken"}
	assert.Equal(t, "signup: conflict (status 409): taken", e.Error())

	e = &Error{Op: "stories", Reason: ReasonUnavailable, Err: errors.New("dial tcp: refused")}
	assert.Equal(t, "stories: unavailable: dial tcp: refused", e.Error())
}

func TestLogin_CreatedAtIsKeptVerbatim(t *testing.T) {
	for _, createdAt := range []string{"2024-03-18T22:30:00-05:00", "2024-03-18 22:30:00"} {
		t.Run(createdAt, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"token":"tok","user":{"username":"alice","name":"Alice","createdAt":"` + createdAt + `","favorites":[],"stories":[]}}`))
			}))
			defer ts.Close()

			c, err := NewHTTPClient(ts.URL, time.Second, WithHTTPClient(ts.Client()))
			require.NoError(t, err)

			u, err := c.Login(context.Background(), "alice", []byte("pw"))
			require.NoError(t, err)
			assert.Equal(t, createdAt, u.CreatedAt)
			assert.Equal(t, "2024-03-18", u.Profile().JoinDate)
		})
	}
}
