package controller

import "github.com/dmitrijs2005/snoozer/internal/client/models"

// View is the page as seen by the controller. Implementations decide how
// sections are drawn; the controller only decides when.
type View interface {
	// HidePageComponents hides every top-level section of the page.
	HidePageComponents()
	// PutStoriesOnPage redraws the story list; user (possibly nil) decides
	// which stories get a favorite marker.
	PutStoriesOnPage(stories []models.Story, user *models.User)
	ShowStoriesList()
	// UpdateNavOnLogin switches the navigation to its logged-in state.
	UpdateNavOnLogin(user *models.User)
	ShowProfile(p models.Profile)
	ShowStoriesContainer()
	ResetLoginForm()
	ResetSignupForm()
	// Alert shows a blocking, user-facing message.
	Alert(msg string)
	// Reload throws away all in-memory page state and starts over.
	Reload()
}

// LoginForm is the content of the login form at submit time.
type LoginForm struct {
	Username string
	Password []byte
}

// SignupForm is the content of the signup form at submit time.
type SignupForm struct {
	Name     string
	Username string
	Password []byte
}

// User-facing alert texts.
const (
	MsgIncorrectCredentials = "Incorrect username or password. Please try again."
	MsgUsernameTaken        = "The username is already taken. Please choose a different one."
	MsgUnexpectedError      = "An unexpected error occurred. Please try again later."
)
