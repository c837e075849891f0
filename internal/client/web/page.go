//go:build js && wasm

package web

import (
	"context"
	"syscall/js"

	"github.com/dmitrijs2005/snoozer/internal/client/controller"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
)

type section int

const (
	sectionStoriesList section = iota
	sectionStoriesContainer
	sectionProfile
	sectionLoginForm
	sectionSignupForm
)

// Page is the whole single-page application.
type Page struct {
	vecty.Core

	ctx  context.Context
	ctrl *controller.Controller

	visible  map[section]bool
	navUser  string
	stories  []models.Story
	favorite map[string]bool
	profile  models.Profile

	loginUsername  string
	loginPassword  string
	signupName     string
	signupUsername string
	signupPassword string
}

var _ controller.View = (*Page)(nil)

func NewPage(ctx context.Context) *Page {
	return &Page{
		ctx: ctx,
		visible: map[section]bool{
			sectionLoginForm:  true,
			sectionSignupForm: true,
		},
		favorite: map[string]bool{},
	}
}

// Bind attaches the controller that handles the page's form events.
func (p *Page) Bind(ctrl *controller.Controller) {
	p.ctrl = ctrl
}

func (p *Page) onLogin(e *vecty.Event) {
	form := controller.LoginForm{Username: p.loginUsername, Password: []byte(p.loginPassword)}
	go func() { _ = p.ctrl.Login(p.ctx, form) }()
}

func (p *Page) onSignup(e *vecty.Event) {
	form := controller.SignupForm{Name: p.signupName, Username: p.signupUsername, Password: []byte(p.signupPassword)}
	go func() { _ = p.ctrl.Signup(p.ctx, form) }()
}

func (p *Page) onLogout(e *vecty.Event) {
	go func() { _ = p.ctrl.Logout(p.ctx) }()
}

// View implementation.

func (p *Page) HidePageComponents() {
	for s := range p.visible {
		p.visible[s] = false
	}
	vecty.Rerender(p)
}

func (p *Page) PutStoriesOnPage(stories []models.Story, user *models.User) {
	p.stories = stories
	p.favorite = make(map[string]bool, len(stories))
	for _, s := range stories {
		p.favorite[s.StoryID] = user.IsFavorite(s.StoryID)
	}
	vecty.Rerender(p)
}

func (p *Page) ShowStoriesList()      { p.show(sectionStoriesList) }
func (p *Page) ShowStoriesContainer() { p.show(sectionStoriesContainer) }

func (p *Page) UpdateNavOnLogin(user *models.User) {
	p.navUser = user.Username
	vecty.Rerender(p)
}

func (p *Page) ShowProfile(pr models.Profile) {
	p.profile = pr
	p.show(sectionProfile)
}

func (p *Page) ResetLoginForm() {
	p.loginUsername, p.loginPassword = "", ""
	vecty.Rerender(p)
}

func (p *Page) ResetSignupForm() {
	p.signupName, p.signupUsername, p.signupPassword = "", "", ""
	vecty.Rerender(p)
}

func (p *Page) Alert(msg string) {
	js.Global().Call("alert", msg)
}

func (p *Page) Reload() {
	js.Global().Get("location").Call("reload")
}

func (p *Page) show(s section) {
	p.visible[s] = true
	vecty.Rerender(p)
}

// Render renders the page.
func (p *Page) Render() vecty.ComponentOrHTML {
	return elem.Body(
		p.renderNav(),
		elem.Section(
			vecty.Markup(vecty.Class("page-components")),
			vecty.If(p.visible[sectionStoriesContainer] || p.visible[sectionStoriesList], p.renderStories()),
			vecty.If(p.visible[sectionLoginForm], p.renderLoginForm()),
			vecty.If(p.visible[sectionSignupForm], p.renderSignupForm()),
			vecty.If(p.visible[sectionProfile], p.renderProfile()),
		),
	)
}

func (p *Page) renderNav() vecty.ComponentOrHTML {
	if p.navUser == "" {
		return elem.Navigation(
			elem.Span(vecty.Text("Hack or Snooze")),
			elem.Span(vecty.Markup(vecty.Class("nav-login")), vecty.Text("login/signup")),
		)
	}
	return elem.Navigation(
		elem.Span(vecty.Text("Hack or Snooze")),
		elem.Anchor(
			vecty.Markup(vecty.Class("nav-user-profile"), vecty.Property("href", "#")),
			vecty.Text(p.navUser),
		),
		elem.Anchor(
			vecty.Markup(
				vecty.Class("nav-logout"),
				vecty.Property("href", "#"),
				event.Click(p.onLogout).PreventDefault(),
			),
			vecty.Text("(logout)"),
		),
	)
}

func (p *Page) renderStories() vecty.ComponentOrHTML {
	items := make(vecty.List, 0, len(p.stories))
	for _, s := range p.stories {
		star := "☆"
		if p.favorite[s.StoryID] {
			star = "★"
		}
		items = append(items, elem.ListItem(
			vecty.Markup(vecty.Property("id", s.StoryID)),
			vecty.If(p.navUser != "", elem.Span(vecty.Markup(vecty.Class("star")), vecty.Text(star+" "))),
			elem.Anchor(
				vecty.Markup(vecty.Class("story-link"), vecty.Property("href", s.URL), vecty.Property("target", "_blank")),
				vecty.Text(s.Title),
			),
			elem.Small(vecty.Markup(vecty.Class("story-hostname")), vecty.Text(" ("+s.HostName()+")")),
			elem.Small(vecty.Markup(vecty.Class("story-author")), vecty.Text(" by "+s.Author)),
		))
	}
	return elem.OrderedList(vecty.Markup(vecty.Class("stories-list")), items)
}

func (p *Page) renderLoginForm() vecty.ComponentOrHTML {
	return elem.Form(
		vecty.Markup(vecty.Class("account-form"), event.Submit(p.onLogin).PreventDefault()),
		elem.Heading4(vecty.Text("Login")),
		elem.Div(
			elem.Label(vecty.Text("username")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "text"),
				vecty.Property("value", p.loginUsername),
				event.Input(func(e *vecty.Event) {
					p.loginUsername = e.Target.Get("value").String()
				}),
			)),
		),
		elem.Div(
			elem.Label(vecty.Text("password")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "password"),
				vecty.Property("value", p.loginPassword),
				event.Input(func(e *vecty.Event) {
					p.loginPassword = e.Target.Get("value").String()
				}),
			)),
		),
		elem.Button(vecty.Text("login"), vecty.Markup(vecty.Property("type", "submit"))),
	)
}

func (p *Page) renderSignupForm() vecty.ComponentOrHTML {
	return elem.Form(
		vecty.Markup(vecty.Class("account-form"), event.Submit(p.onSignup).PreventDefault()),
		elem.Heading4(vecty.Text("Create Account")),
		elem.Div(
			elem.Label(vecty.Text("name")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "text"),
				vecty.Property("value", p.signupName),
				event.Input(func(e *vecty.Event) {
					p.signupName = e.Target.Get("value").String()
				}),
			)),
		),
		elem.Div(
			elem.Label(vecty.Text("username")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "text"),
				vecty.Property("value", p.signupUsername),
				event.Input(func(e *vecty.Event) {
					p.signupUsername = e.Target.Get("value").String()
				}),
			)),
		),
		elem.Div(
			elem.Label(vecty.Text("password")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "password"),
				vecty.Property("value", p.signupPassword),
				event.Input(func(e *vecty.Event) {
					p.signupPassword = e.Target.Get("value").String()
				}),
			)),
		),
		elem.Button(vecty.Text("create account"), vecty.Markup(vecty.Property("type", "submit"))),
	)
}

func (p *Page) renderProfile() vecty.ComponentOrHTML {
	return elem.Section(
		vecty.Markup(vecty.Class("user-profile")),
		elem.Heading4(vecty.Text("User Profile Info")),
		elem.Div(vecty.Text("Name: "+p.profile.Name)),
		elem.Div(vecty.Text("Username: "+p.profile.Username)),
		elem.Div(vecty.Text("Account Created: "+p.profile.JoinDate)),
	)
}
