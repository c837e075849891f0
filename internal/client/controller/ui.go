package controller

import "context"

// SyncLoggedInView sets the page up for the session user: story list with
// favorite markers, logged-in navigation and the profile panel. It does
// nothing when no user is logged in.
func (c *Controller) SyncLoggedInView(ctx context.Context) {
	c.log.Debug(ctx, "updateUIOnUserLogin")

	u := c.session.Current()
	if u == nil {
		return
	}

	c.view.HidePageComponents()
	c.view.PutStoriesOnPage(c.Stories(), u)
	c.view.ShowStoriesList()
	c.view.UpdateNavOnLogin(u)
	c.GenerateUserProfile(ctx)
	c.view.ShowStoriesContainer()
}

// GenerateUserProfile fills the profile panel from the session user.
func (c *Controller) GenerateUserProfile(ctx context.Context) {
	c.log.Debug(ctx, "generateUserProfile")

	if u := c.session.Current(); u != nil {
		c.view.ShowProfile(u.Profile())
	}
}

// LoadStories fetches the story list and draws it. On failure the list is
// left empty and the error is logged.
func (c *Controller) LoadStories(ctx context.Context) {
	stories, err := c.stories.List(ctx)
	if err != nil {
		c.log.Error(ctx, "load stories failed", "error", err)
		stories = nil
	}

	c.mu.Lock()
	c.storyList = stories
	c.mu.Unlock()

	c.view.PutStoriesOnPage(stories, c.session.Current())
	c.view.ShowStoriesList()
}
