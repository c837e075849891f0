package controller

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
)

// Login handles the login form submission. On success the user becomes the
// session user, the form is reset, credentials are remembered and the
// logged-in view is shown. The returned error has already been reported to
// the user.
func (c *Controller) Login(ctx context.Context, form LoginForm) error {
	c.log.Debug(ctx, "login", "username", form.Username)

	return c.submit(ctx, submissionKey("login", form.Username, form.Password), func(ctx context.Context) error {
		u, err := c.auth.Login(ctx, form.Username, form.Password)
		if err != nil {
			c.reportFailure(ctx, "login", err, client.ReasonUnauthorized, MsgIncorrectCredentials)
			return err
		}

		c.session.Set(u)
		c.view.ResetLoginForm()
		c.saveUserCredentials(ctx)
		c.SyncLoggedInView(ctx)
		return nil
	})
}

// Signup handles the signup form submission.
func (c *Controller) Signup(ctx context.Context, form SignupForm) error {
	c.log.Debug(ctx, "signup", "username", form.Username)

	return c.submit(ctx, submissionKey("signup", form.Username, form.Password, form.Name), func(ctx context.Context) error {
		u, err := c.auth.Signup(ctx, form.Username, form.Password, form.Name)
		if err != nil {
			c.reportFailure(ctx, "signup", err, client.ReasonConflict, MsgUsernameTaken)
			return err
		}

		c.session.Set(u)
		c.saveUserCredentials(ctx)
		c.SyncLoggedInView(ctx)
		c.view.ResetSignupForm()
		return nil
	})
}

// submit runs fn once for all identical submissions in flight. The shared
// call is detached from the callers' cancellation; a caller whose ctx ends
// stops waiting and gets ctx.Err().
func (c *Controller) submit(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	shared := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (any, error) {
		return nil, fn(shared)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// submissionKey identifies a form submission by its full content. The
// password enters only as a digest.
func submissionKey(form, username string, password []byte, extra ...string) string {
	h := sha256.New()
	h.Write(password)
	for _, e := range extra {
		h.Write([]byte{0})
		h.Write([]byte(e))
	}
	return form + "\x00" + username + "\x00" + hex.EncodeToString(h.Sum(nil))
}

// Logout wipes the whole storage area and reloads the page. The reload
// happens even if wiping failed; the error is logged and returned.
func (c *Controller) Logout(ctx context.Context) error {
	c.log.Debug(ctx, "logout")

	err := c.auth.ClearLocalData(ctx)
	if err != nil {
		c.log.Error(ctx, "clear local storage failed", "error", err)
	}
	c.session.Clear()
	c.view.Reload()
	return err
}

// CheckForRememberedUser logs in with stored credentials, if there are any.
// It reports whether a user was restored. Failures are logged only; the
// page simply stays logged out.
func (c *Controller) CheckForRememberedUser(ctx context.Context) bool {
	c.log.Debug(ctx, "checkForRememberedUser")

	u, err := c.auth.RestoreRemembered(ctx)
	switch {
	case errors.Is(err, services.ErrNoRememberedUser):
		return false
	case errors.Is(err, services.ErrStaleCredentials):
		c.log.Warn(ctx, "stored credentials rejected and purged", "error", err)
	case err != nil:
		c.log.Warn(ctx, "could not restore remembered user", "error", err)
	}

	c.session.Set(u)
	return u != nil
}

// saveUserCredentials mirrors the session user into storage. A failed write
// costs only the "remember me" behaviour, so it is logged and not alerted.
func (c *Controller) saveUserCredentials(ctx context.Context) {
	u := c.session.Current()
	if u == nil {
		return
	}
	if err := c.auth.Remember(ctx, u); err != nil {
		c.log.Warn(ctx, "could not remember credentials", "username", u.Username, "error", err)
	}
}
