package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/views"
	"github.com/dmitrijs2005/jwtconsole/internal/common"
)

// List loads the users and prints them as a table.
func (a *App) List(ctx context.Context) error {
	a.nav.Navigate(views.RouteUsers)

	if err := a.usersView.Load(ctx); err != nil {
		a.report(a.usersView.Status())
		return err
	}

	users := a.usersView.Users()
	if len(users) == 0 {
		a.println(a.tr.T(i18n.UsersEmpty))
		return nil
	}

	a.printUsers(users)
	a.println(a.tr.T(i18n.UsersCount, len(users)))
	return nil
}

func (a *App) printUsers(users []models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range users {
		fmt.Fprintln(tw, u.String())
	}
	_ = tw.Flush()
}

// Show prints one user fetched by id.
func (a *App) Show(ctx context.Context, arg string) error {
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	u, err := a.usersView.Show(ctx, id)
	if err != nil {
		a.report(a.usersView.Status())
		return err
	}
	a.printUsers([]models.User{*u})
	return nil
}

// Edit opens the edit dialog for a user, asks for each field (empty keeps
// the current value) and submits the change.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	u, err := a.usersView.Show(ctx, id)
	if err != nil {
		a.report(a.usersView.Status())
		return err
	}

	a.usersView.OpenEdit(*u)
	a.println(a.tr.T(i18n.CLIEditHint))

	upd, err := a.promptUpdate(*u, a.usersView.Pending())
	if err != nil {
		a.usersView.CloseEdit()
		return err
	}
	a.usersView.SetPending(upd)

	err = a.usersView.Update(ctx)
	a.report(a.usersView.Status())
	if err != nil {
		a.usersView.CloseEdit()
	}
	return err
}

func (a *App) promptUpdate(u models.User, upd models.UserUpdate) (models.UserUpdate, error) {
	ask := func(key, current string) (string, error) {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", a.tr.T(key), current), a.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(v), nil
	}

	if v, err := ask(i18n.PromptUsername, u.Username); err != nil {
		return upd, err
	} else if v != "" {
		upd.Username = &v
	}
	if v, err := ask(i18n.PromptEmail, u.Email); err != nil {
		return upd, err
	} else if v != "" {
		upd.Email = &v
	}
	if v, err := ask(i18n.PromptRole, u.Role); err != nil {
		return upd, err
	} else if v != "" {
		role := strings.ToUpper(v)
		upd.Role = &role
	}

	current := "n"
	if u.Enabled {
		current = "y"
	}
	if v, err := ask(i18n.PromptEnabled, current); err != nil {
		return upd, err
	} else if v != "" {
		enabled := isYes(v)
		upd.Enabled = &enabled
	}

	password, err := getPassword(a.reader, a.tr.T(i18n.PromptNewPassword), a.out)
	if err != nil {
		return upd, err
	}
	defer common.WipeByteArray(password)
	if len(password) > 0 {
		pw := string(password)
		upd.Password = &pw
	}
	return upd, nil
}

// Delete removes a user after a y/N confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	err = a.usersView.Delete(ctx, id)
	if errors.Is(err, views.ErrCancelled) {
		a.println(a.tr.T(i18n.CLICancelled))
		return nil
	}
	a.report(a.usersView.Status())
	return err
}

func (a *App) parseID(arg string) (int64, error) {
	id, err := models.ParseUserID(arg)
	if err != nil {
		a.println(a.tr.T(i18n.CLIInvalidID, arg))
		return 0, err
	}
	return id, nil
}
