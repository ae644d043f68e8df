package views

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/services"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
)

// UsersView is the user-management screen: the loaded list, an edit dialog
// for one user, deletion with confirmation and logout.
type UsersView struct {
	display
	timers timers

	users   services.UserService
	auth    services.AuthService
	nav     Navigator
	confirm Confirmer
	tr      i18n.Translator
	logger  logging.Logger
	delays  Delays

	// guarded by display.mu
	list     []models.User
	editing  bool
	selected *models.User
	pending  models.UserUpdate
}

func NewUsersView(users services.UserService, auth services.AuthService, nav Navigator, confirm Confirmer,
	tr i18n.Translator, logger logging.Logger, delays Delays) *UsersView {
	return &UsersView{
		users:   users,
		auth:    auth,
		nav:     nav,
		confirm: confirm,
		tr:      tr,
		logger:  logger,
		delays:  delays,
	}
}

// Load fetches the user list. On failure the previous list is kept.
func (v *UsersView) Load(ctx context.Context) error {
	list, err := v.users.List(ctx)
	if err != nil {
		v.logger.Error(ctx, "list users failed", "error", err)
		v.update(func(s *Status) {
			s.State = StateFailed
			s.Error = v.tr.T(i18n.UsersLoadFailed)
		})
		return err
	}

	v.update(func(s *Status) {
		v.list = list
		if s.State != StateSucceeded {
			s.State = StateIdle
		}
		s.Error = ""
	})
	return nil
}

// Users returns a copy of the loaded list.
func (v *UsersView) Users() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.list)
}

// Show fetches a single user by id.
func (v *UsersView) Show(ctx context.Context, id int64) (*models.User, error) {
	u, err := v.users.Get(ctx, id)
	if err != nil {
		v.logger.Error(ctx, "get user failed", "id", id, "error", err)
		msg := v.tr.T(i18n.UsersLoadFailed)
		if errors.Is(err, client.ErrNotFound) {
			msg = v.tr.T(i18n.UsersNotFound, id)
		}
		v.fail(msg)
		return nil, err
	}
	return u, nil
}

// OpenEdit opens the edit dialog for u with the pending change seeded from
// the record. Messages are cleared and a pending close is cancelled.
func (v *UsersView) OpenEdit(u models.User) {
	v.timers.cancel("close")
	v.update(func(s *Status) {
		v.editing = true
		v.selected = &u
		v.pending = models.UserUpdateFrom(u)
		*s = Status{State: StateIdle}
	})
}

// CloseEdit closes the dialog and forgets the selection.
func (v *UsersView) CloseEdit() {
	v.update(func(*Status) {
		v.editing = false
		v.selected = nil
		v.pending = models.UserUpdate{}
	})
}

func (v *UsersView) Editing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

// Selected returns the user being edited, if any.
func (v *UsersView) Selected() (models.User, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return models.User{}, false
	}
	return *v.selected, true
}

// Pending returns the change that Update will send.
func (v *UsersView) Pending() models.UserUpdate {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending
}

// SetPending replaces the change that Update will send.
func (v *UsersView) SetPending(upd models.UserUpdate) {
	v.update(func(*Status) { v.pending = upd })
}

// Update sends the pending change for the selected user. On success the list
// is reloaded and the dialog closes after the close delay.
func (v *UsersView) Update(ctx context.Context) error {
	v.mu.Lock()
	editing, selected, pending := v.editing, v.selected, v.pending
	v.mu.Unlock()
	if !editing || selected == nil {
		return ErrNoSelection
	}
	if pending.IsEmpty() {
		return ErrEmptyUpdate
	}

	if err := v.begin(); err != nil {
		return err
	}

	if _, err := v.users.Update(ctx, selected.ID, pending); err != nil {
		v.logger.Error(ctx, "update user failed", "id", selected.ID, "error", err)
		v.fail(v.tr.T(i18n.UsersUpdateFailed))
		return err
	}

	v.logger.Info(ctx, "user updated", "id", selected.ID)
	v.succeed(v.tr.T(i18n.UsersUpdated))
	_ = v.Load(ctx)
	v.timers.schedule("close", v.delays.Close, v.CloseEdit)
	return nil
}

// Delete removes user id after the Confirmer agrees. A refusal returns
// ErrCancelled without any request. On success the list is reloaded and the
// success message is cleared after the clear delay.
func (v *UsersView) Delete(ctx context.Context, id int64) error {
	if !v.confirm.Confirm(ctx, v.tr.T(i18n.UsersConfirmDelete)) {
		return ErrCancelled
	}

	if err := v.begin(); err != nil {
		return err
	}

	if _, err := v.users.Delete(ctx, id); err != nil {
		v.logger.Error(ctx, "delete user failed", "id", id, "error", err)
		v.fail(v.tr.T(i18n.UsersDeleteFailed))
		return err
	}

	v.logger.Info(ctx, "user deleted", "id", id)
	v.succeed(v.tr.T(i18n.UsersDeleted))
	_ = v.Load(ctx)
	v.timers.schedule("clear", v.delays.Clear, func() {
		v.update(func(s *Status) { s.Success = "" })
	})
	return nil
}

// Logout drops the session and returns to login. The navigation happens even
// if the durable copy could not be removed.
func (v *UsersView) Logout(ctx context.Context) error {
	err := v.auth.Logout(ctx)
	if err != nil {
		v.logger.Error(ctx, "logout failed", "error", err)
	}
	v.timers.reset()
	v.update(func(s *Status) {
		v.list = nil
		v.editing = false
		v.selected = nil
		v.pending = models.UserUpdate{}
		*s = Status{State: StateIdle}
	})
	v.nav.Navigate(RouteLogin)
	return err
}

// Close cancels pending delayed actions.
func (v *UsersView) Close() {
	v.timers.stopAll()
}
