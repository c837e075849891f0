package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/snoozer/internal/client/controller"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/common"
)

type section int

const (
	sectionStoriesList section = iota
	sectionStoriesContainer
	sectionProfile
	sectionLoginForm
	sectionSignupForm
)

type storyLine struct {
	story    models.Story
	favorite bool
}

// TerminalView keeps the page state of the terminal client and prints it
// on request. Alerts are printed immediately.
type TerminalView struct {
	mu  sync.Mutex
	out io.Writer

	visible map[section]bool
	navUser string
	stories []storyLine
	profile models.Profile

	login  controller.LoginForm
	signup controller.SignupForm

	reload bool
}

var _ controller.View = (*TerminalView)(nil)

func NewTerminalView(out io.Writer) *TerminalView {
	v := &TerminalView{out: out}
	v.Reset()
	return v
}

// Reset puts the view back into its initial, logged-out state.
func (v *TerminalView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.visible = map[section]bool{
		sectionLoginForm:  true,
		sectionSignupForm: true,
	}
	v.navUser = ""
	v.stories = nil
	v.profile = models.Profile{}
	v.resetLogin()
	v.resetSignup()
	v.reload = false
}

func (v *TerminalView) HidePageComponents() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for s := range v.visible {
		v.visible[s] = false
	}
}

func (v *TerminalView) PutStoriesOnPage(stories []models.Story, user *models.User) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stories = make([]storyLine, 0, len(stories))
	for _, s := range stories {
		v.stories = append(v.stories, storyLine{story: s, favorite: user.IsFavorite(s.StoryID)})
	}
}

func (v *TerminalView) ShowStoriesList() {
	v.show(sectionStoriesList)
}

func (v *TerminalView) UpdateNavOnLogin(user *models.User) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.navUser = user.Username
	fmt.Fprintf(v.out, "Logged in as %s\n", user.Username)
}

func (v *TerminalView) ShowProfile(p models.Profile) {
	v.mu.Lock()
	v.profile = p
	v.mu.Unlock()
	v.show(sectionProfile)
}

func (v *TerminalView) ShowStoriesContainer() {
	v.show(sectionStoriesContainer)
}

func (v *TerminalView) ResetLoginForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resetLogin()
}

func (v *TerminalView) ResetSignupForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resetSignup()
}

func (v *TerminalView) Alert(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "! %s\n", msg)
}

func (v *TerminalView) Reload() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reload = true
}

// TakeReload reports whether a reload was requested and clears the request.
func (v *TerminalView) TakeReload() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	r := v.reload
	v.reload = false
	return r
}

// FillLoginForm records what the user typed into the login form.
func (v *TerminalView) FillLoginForm(f controller.LoginForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.login = f
}

// FillSignupForm records what the user typed into the signup form.
func (v *TerminalView) FillSignupForm(f controller.SignupForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.signup = f
}

// RenderStories prints the story list; favorites are marked with '*'.
func (v *TerminalView) RenderStories() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.visible[sectionStoriesList] {
		fmt.Fprintln(v.out, "Stories are not loaded")
		return
	}
	if len(v.stories) == 0 {
		fmt.Fprintln(v.out, "No stories yet")
		return
	}
	for i, l := range v.stories {
		mark := " "
		if l.favorite {
			mark = "*"
		}
		fmt.Fprintf(v.out, "%2d %s %s (%s) by %s\n", i+1, mark, l.story.Title, l.story.HostName(), l.story.Author)
	}
}

// RenderProfile prints the profile panel.
func (v *TerminalView) RenderProfile() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.visible[sectionProfile] {
		fmt.Fprintln(v.out, "Not logged in")
		return
	}
	fmt.Fprintf(v.out, "Name:     %s\nUsername: %s\nJoined:   %s\n", v.profile.Name, v.profile.Username, v.profile.JoinDate)
}

func (v *TerminalView) show(s section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible[s] = true
}

func (v *TerminalView) resetLogin() {
	common.WipeByteArray(v.login.Password)
	v.login = controller.LoginForm{}
}

func (v *TerminalView) resetSignup() {
	common.WipeByteArray(v.signup.Password)
	v.signup = controller.SignupForm{}
}
