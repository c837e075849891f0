package client

import (
	"context"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// Client is the remote authentication capability consumed by the front ends.
type Client interface {
	// Login verifies username/password and returns the user with a fresh LoginToken.
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	// Signup registers a new account and returns it logged in.
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	// LoginViaStoredCredentials fetches the user identified by a previously
	// issued token. The returned user carries that same token.
	LoginViaStoredCredentials(ctx context.Context, token, username string) (*models.User, error)
	// GetStories returns the most recent stories.
	GetStories(ctx context.Context) ([]models.Story, error)
	Close() error
}
