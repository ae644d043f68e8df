package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/views"
	"github.com/dmitrijs2005/jwtconsole/internal/common"
)

// Login prompts for credentials and submits them through the login view.
// On success the user list is shown right away, as the users route does on
// entry. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.nav.Navigate(views.RouteLogin)

	userName, err := getSimpleText(a.reader, a.tr.T(i18n.PromptUsername), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.tr.T(i18n.PromptPassword), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.loginView.Submit(ctx, models.Credentials{Username: userName, Password: string(password)}); err != nil {
		a.report(a.loginView.Status())
		return err
	}

	a.println(a.tr.T(i18n.CLILoggedIn, userName))
	if a.nav.Route() == views.RouteUsers {
		return a.List(ctx)
	}
	return nil
}

// Register prompts for the registration form. Both password entries are
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.nav.Navigate(views.RouteRegister)

	userName, err := getSimpleText(a.reader, a.tr.T(i18n.PromptUsername), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, a.tr.T(i18n.PromptEmail), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.tr.T(i18n.PromptPassword), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, a.tr.T(i18n.PromptConfirmPassword), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.registerView.Submit(ctx, models.RegistrationData{
		Username:        userName,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	a.report(a.registerView.Status())
	return err
}

// Logout drops the session and returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	err := a.usersView.Logout(ctx)
	a.println(a.tr.T(i18n.CLILoggedOut))
	return err
}

// Whoami prints the current session and, when the token carries one, its
// expiry. The token is decoded for display only.
func (a *App) Whoami(ctx context.Context) error {
	sess := a.authService.Current()
	if sess == nil || !a.isLoggedIn(ctx) {
		a.println(a.tr.T(i18n.CLINotLoggedIn))
		return nil
	}

	a.println(a.tr.T(i18n.CLIWhoami, sess.Username, sess.Email, sess.Role))

	claims, err := sess.Claims()
	if err != nil {
		a.logger.Debug(ctx, "token claims unreadable", "error", err)
		return nil
	}
	if !claims.ExpiresAt.IsZero() {
		a.println(a.tr.T(i18n.CLIExpires, claims.ExpiresAt.Local().Format(time.RFC3339)))
	}
	return nil
}
