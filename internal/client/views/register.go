package views

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/services"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
)

type RegisterView struct {
	display
	timers timers

	auth   services.AuthService
	nav    Navigator
	tr     i18n.Translator
	logger logging.Logger
	delays Delays
}

func NewRegisterView(auth services.AuthService, nav Navigator, tr i18n.Translator, logger logging.Logger, delays Delays) *RegisterView {
	return &RegisterView{auth: auth, nav: nav, tr: tr, logger: logger, delays: delays}
}

// Submit registers a new account. A password/confirmation mismatch is
// reported without contacting the server. After a successful registration
// the view navigates to login once the redirect delay has passed.
func (v *RegisterView) Submit(ctx context.Context, data models.RegistrationData) error {
	if !data.PasswordsMatch() {
		v.update(func(s *Status) {
			s.Error = v.tr.T(i18n.RegisterMismatch)
			s.Success = ""
		})
		return ErrPasswordMismatch
	}

	if err := v.begin(); err != nil {
		return err
	}

	resp, err := v.auth.Register(ctx, data.Request())
	if err != nil {
		v.logger.Error(ctx, "registration failed", "username", data.Username, "error", err)
		msg := client.ServerMessage(err)
		if msg == "" {
			msg = v.tr.T(i18n.RegisterFailed)
		}
		v.fail(msg)
		return err
	}

	if resp != nil {
		v.logger.Info(ctx, "registered", "username", data.Username, "message", resp.Message)
	}
	v.succeed(v.tr.T(i18n.RegisterSuccess))
	v.timers.schedule("redirect", v.delays.Redirect, func() {
		v.nav.Navigate(RouteLogin)
	})
	return nil
}

// Close cancels a pending redirect.
func (v *RegisterView) Close() {
	v.timers.stopAll()
}
