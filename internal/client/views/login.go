package views

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/services"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
)

type LoginView struct {
	display

	auth   services.AuthService
	nav    Navigator
	tr     i18n.Translator
	logger logging.Logger
}

func NewLoginView(auth services.AuthService, nav Navigator, tr i18n.Translator, logger logging.Logger) *LoginView {
	return &LoginView{auth: auth, nav: nav, tr: tr, logger: logger}
}

// Submit logs in with creds. On success the session store is updated by the
// gateway and the view navigates to the user list. Every failure shows the
// same message.
func (v *LoginView) Submit(ctx context.Context, creds models.Credentials) error {
	if err := v.begin(); err != nil {
		return err
	}

	sess, err := v.auth.Login(ctx, creds)
	if err != nil {
		v.logger.Error(ctx, "login failed", "username", creds.Username, "error", err)
		v.fail(v.tr.T(i18n.LoginInvalid))
		return err
	}

	v.logger.Info(ctx, "logged in", "username", sess.Username, "role", sess.Role)
	v.succeed("")
	v.nav.Navigate(RouteUsers)
	return nil
}
