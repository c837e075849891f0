package cli

import (
	"context"

	"github.com/dmitrijs2005/snoozer/internal/client/controller"
	"github.com/dmitrijs2005/snoozer/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup fills the signup form from the terminal and submits it.
// The password is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := controller.SignupForm{Name: name, Username: userName, Password: password}
	a.view.FillSignupForm(form)
	return a.ctrl.Signup(ctx, form)
}

// Login fills the login form from the terminal and submits it.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := controller.LoginForm{Username: userName, Password: password}
	a.view.FillLoginForm(form)
	return a.ctrl.Login(ctx, form)
}

// Logout wipes local storage and reloads the page.
func (a *App) Logout(ctx context.Context) error {
	defer a.reloadIfRequested(ctx)
	return a.ctrl.Logout(ctx)
}

// Stories prints the story list as currently shown on the page.
func (a *App) Stories(ctx context.Context) error {
	a.view.RenderStories()
	return nil
}

// Profile prints the profile panel, if it is visible.
func (a *App) Profile(ctx context.Context) error {
	a.view.RenderProfile()
	return nil
}
