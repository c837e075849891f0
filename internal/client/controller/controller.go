package controller

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
	"github.com/dmitrijs2005/snoozer/internal/client/session"
	"github.com/dmitrijs2005/snoozer/internal/logging"
	"golang.org/x/sync/singleflight"
)

type Controller struct {
	auth    services.AuthService
	stories services.StoryService
	session *session.State
	view    View
	log     logging.Logger

	// flight coalesces a double-submitted form into a single API call.
	flight singleflight.Group

	mu        sync.RWMutex
	storyList []models.Story
}

func New(auth services.AuthService, stories services.StoryService, st *session.State, view View, log logging.Logger) *Controller {
	return &Controller{
		auth:    auth,
		stories: stories,
		session: st,
		view:    view,
		log:     log.With("component", "controller"),
	}
}

// Session exposes the session state the controller writes to.
func (c *Controller) Session() *session.State {
	return c.session
}

// Stories returns the story list loaded at startup.
func (c *Controller) Stories() []models.Story {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.storyList
}

// Start runs the page-load sequence. Call it once per (re)load, before any
// user event is dispatched.
func (c *Controller) Start(ctx context.Context) {
	c.CheckForRememberedUser(ctx)
	c.LoadStories(ctx)
	if c.session.LoggedIn() {
		c.SyncLoggedInView(ctx)
	}
}

// reportFailure alerts the specific message when err carries the expected
// reason; anything else is logged and gets the generic alert.
func (c *Controller) reportFailure(ctx context.Context, op string, err error, expected client.Reason, msg string) {
	if client.ReasonOf(err) == expected {
		c.log.Info(ctx, op+" rejected", "reason", expected.String())
		c.view.Alert(msg)
		return
	}
	c.log.Error(ctx, op+" failed", "error", err)
	c.view.Alert(MsgUnexpectedError)
}
