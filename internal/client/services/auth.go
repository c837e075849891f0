// Package services contains the application services of the snoozer client.
// This file defines the authentication service: login, signup, restoring a
// remembered session and housekeeping of the local credential store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/snoozer/internal/tokenx"
)

var (
	// ErrNoRememberedUser: the storage area holds no complete credential pair.
	ErrNoRememberedUser = errors.New("no remembered user")
	// ErrStaleCredentials: the stored pair was rejected and has been purged.
	ErrStaleCredentials = errors.New("stale stored credentials")
)

// AuthService defines authentication operations for the front ends.
//
// Contract:
//   - Login / Signup: one remote call each; nothing is stored.
//   - Remember: mirror the user's (token, username) into local storage.
//   - RestoreRemembered: log in with stored credentials, if any.
//   - ClearLocalData: wipe the whole storage area (logout).
//   - Close: release the underlying client.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	Remember(ctx context.Context, u *models.User) error
	RestoreRemembered(ctx context.Context) (*models.User, error)
	ClearLocalData(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	storage localstorage.Repository
}

// NewAuthService binds an AuthService to the API client and storage area.
func NewAuthService(c client.Client, storage localstorage.Repository) AuthService {
	return &authService{client: c, storage: storage}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	u, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return u, nil
}

func (a *authService) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	u, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}
	return u, nil
}

// Remember stores the user's token and username. A nil user is a no-op.
func (a *authService) Remember(ctx context.Context, u *models.User) error {
	if u == nil {
		return nil
	}
	return localstorage.SaveCredentials(ctx, a.storage, localstorage.Credentials{
		Token:    u.LoginToken,
		Username: u.Username,
	})
}

// RestoreRemembered returns ErrNoRememberedUser without any remote call when
// either key is missing.
//
// A token that is a JWT naming a different user, or that the API rejects as
// unauthorized, is purged and reported as ErrStaleCredentials. Any other
// failure leaves storage untouched so the next start can retry.
func (a *authService) RestoreRemembered(ctx context.Context) (*models.User, error) {
	creds, err := localstorage.LoadCredentials(ctx, a.storage)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.Complete() {
		return nil, ErrNoRememberedUser
	}

	if claimed, err := tokenx.Username(creds.Token); err == nil && claimed != creds.Username {
		return nil, a.purge(ctx, fmt.Errorf("token issued for %q, stored username %q", claimed, creds.Username))
	}

	u, err := a.client.LoginViaStoredCredentials(ctx, creds.Token, creds.Username)
	if err != nil {
		if client.ReasonOf(err) == client.ReasonUnauthorized {
			return nil, a.purge(ctx, err)
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return u, nil
}

func (a *authService) purge(ctx context.Context, cause error) error {
	if err := localstorage.ForgetCredentials(ctx, a.storage); err != nil {
		return errors.Join(fmt.Errorf("%w: %w", ErrStaleCredentials, cause), err)
	}
	return fmt.Errorf("%w: %w", ErrStaleCredentials, cause)
}

// ClearLocalData wipes the entire storage area, not only the credential keys.
func (a *authService) ClearLocalData(ctx context.Context) error {
	return a.storage.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
