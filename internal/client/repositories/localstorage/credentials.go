package localstorage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snoozer/internal/common"
)

// Credentials is the remembered (token, username) pair.
type Credentials struct {
	Token    string
	Username string
}

// Complete reports whether both halves are present.
func (c Credentials) Complete() bool {
	return c.Token != "" && c.Username != ""
}

// LoadCredentials reads the remembered pair. Missing keys come back empty.
func LoadCredentials(ctx context.Context, r Repository) (Credentials, error) {
	token, err := r.Get(ctx, common.TokenKey)
	if err != nil {
		return Credentials{}, err
	}
	username, err := r.Get(ctx, common.UsernameKey)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: string(token), Username: string(username)}, nil
}

// SaveCredentials writes both keys, atomically when r supports it.
func SaveCredentials(ctx context.Context, r Repository, c Credentials) error {
	write := func(ctx context.Context, r Repository) error {
		if err := r.Set(ctx, common.TokenKey, []byte(c.Token)); err != nil {
			return err
		}
		return r.Set(ctx, common.UsernameKey, []byte(c.Username))
	}

	if tx, ok := r.(Transactor); ok {
		if err := tx.WithinTx(ctx, write); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
		return nil
	}
	if err := write(ctx, r); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// ForgetCredentials removes only the two credential keys.
func ForgetCredentials(ctx context.Context, r Repository) error {
	if err := r.Delete(ctx, common.TokenKey); err != nil {
		return err
	}
	return r.Delete(ctx, common.UsernameKey)
}
