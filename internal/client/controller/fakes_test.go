package controller

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// recordingView records every call the controller makes on the page.
type recordingView struct {
	mu sync.Mutex

	calls   []string
	alerts  []string
	stories []models.Story
	starred map[string]bool
	navUser string
	profile models.Profile
	reloads int
}

func (v *recordingView) record(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls = append(v.calls, name)
}

func (v *recordingView) HidePageComponents() { v.record("hide") }
func (v *recordingView) PutStoriesOnPage(stories []models.Story, user *models.User) {
	v.record("stories")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stories = stories
	v.starred = make(map[string]bool)
	for _, s := range stories {
		v.starred[s.StoryID] = user.IsFavorite(s.StoryID)
	}
}
func (v *recordingView) ShowStoriesList() { v.record("show-list") }
func (v *recordingView) UpdateNavOnLogin(user *models.User) {
	v.record("nav")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.navUser = user.Username
}
func (v *recordingView) ShowProfile(p models.Profile) {
	v.record("profile")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.profile = p
}
func (v *recordingView) ShowStoriesContainer() { v.record("show-container") }
func (v *recordingView) ResetLoginForm()       { v.record("reset-login") }
func (v *recordingView) ResetSignupForm()      { v.record("reset-signup") }
func (v *recordingView) Alert(msg string) {
	v.record("alert")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, msg)
}
func (v *recordingView) Reload() {
	v.record("reload")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reloads++
}

func (v *recordingView) Calls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.calls...)
}

type fakeAuth struct {
	mu sync.Mutex

	loginUser *models.User
	loginErr  error
	loginGate chan struct{}

	signupUser *models.User
	signupErr  error

	restoreUser *models.User
	restoreErr  error

	rememberErr error
	clearErr    error

	loginCalls     int
	loginPasswords []string
	signupCalls    int
	restoreCalls   int
	remembered     []*models.User
	cleared        int
}

func (f *fakeAuth) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	f.mu.Lock()
	f.loginCalls++
	f.loginPasswords = append(f.loginPasswords, string(password))
	gate := f.loginGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signupCalls++
	return f.signupUser, f.signupErr
}

func (f *fakeAuth) Remember(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remembered = append(f.remembered, u)
	return f.rememberErr
}

func (f *fakeAuth) RestoreRemembered(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restoreCalls++
	return f.restoreUser, f.restoreErr
}

func (f *fakeAuth) ClearLocalData(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	return f.clearErr
}

func (f *fakeAuth) Close(ctx context.Context) error { return nil }

type fakeStories struct {
	stories []models.Story
	err     error
}

func (f *fakeStories) List(ctx context.Context) ([]models.Story, error) {
	return f.stories, f.err
}
