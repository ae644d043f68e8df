// Package i18n holds the user-facing strings of the console in Catalan (the
// default) and English, served through golang.org/x/text message catalogs.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	LoginInvalid = "login.invalid"

	RegisterMismatch = "register.mismatch"
	RegisterSuccess  = "register.success"
	RegisterFailed   = "register.failed"

	UsersLoadFailed    = "users.load_failed"
	UsersUpdated       = "users.updated"
	UsersUpdateFailed  = "users.update_failed"
	UsersConfirmDelete = "users.confirm_delete"
	UsersDeleted       = "users.deleted"
	UsersDeleteFailed  = "users.delete_failed"
	UsersNotFound      = "users.not_found"
	UsersEmpty         = "users.empty"
	UsersCount         = "users.count"

	CLIWelcome       = "cli.welcome"
	CLIHelpGuest     = "cli.help_guest"
	CLIHelpUser      = "cli.help_user"
	CLILoginRequired = "cli.login_required"
	CLIUnknown       = "cli.unknown"
	CLIUsage         = "cli.usage"
	CLIInvalidID     = "cli.invalid_id"
	CLIBye           = "cli.bye"
	CLILoggedIn      = "cli.logged_in"
	CLILoggedOut     = "cli.logged_out"
	CLINotLoggedIn   = "cli.not_logged_in"
	CLIWhoami        = "cli.whoami"
	CLIExpires       = "cli.expires"
	CLIEditHint      = "cli.edit_hint"
	CLICancelled     = "cli.cancelled"

	PromptUsername        = "prompt.username"
	PromptEmail           = "prompt.email"
	PromptPassword        = "prompt.password"
	PromptConfirmPassword = "prompt.confirm_password"
	PromptNewPassword     = "prompt.new_password"
	PromptRole            = "prompt.role"
	PromptEnabled         = "prompt.enabled"
)

var messages = map[language.Tag]map[string]string{
	language.Catalan: {
		LoginInvalid: "Usuari o contrasenya incorrectes",

		RegisterMismatch: "Les contrasenyes no coincideixen",
		RegisterSuccess:  "Registre exitós! Redirigint al login...",
		RegisterFailed:   "Error en el registre. Prova-ho de nou.",

		UsersLoadFailed:    "Error carregant els usuaris",
		UsersUpdated:       "Usuari actualitzat correctament",
		UsersUpdateFailed:  "Error actualitzant l'usuari",
		UsersConfirmDelete: "Estàs segur que vols eliminar aquest usuari?",
		UsersDeleted:       "Usuari eliminat correctament",
		UsersDeleteFailed:  "Error eliminant l'usuari",
		UsersNotFound:      "No existeix cap usuari amb id %d",
		UsersEmpty:         "No hi ha usuaris",
		UsersCount:         "%d usuaris",

		CLIWelcome:       "Benvingut a jwtconsole (escriu 'help' per veure les ordres)",
		CLIHelpGuest:     "Ordres disponibles: login, register, exit",
		CLIHelpUser:      "Ordres disponibles: users, show <id>, edit <id>, delete <id>, whoami, logout, exit",
		CLILoginRequired: "Cal iniciar sessió primer",
		CLIUnknown:       "Ordre desconeguda: %s",
		CLIUsage:         "Ús: %s",
		CLIInvalidID:     "Identificador no vàlid: %s",
		CLIBye:           "Adéu!",
		CLILoggedIn:      "Sessió iniciada com a %s",
		CLILoggedOut:     "Sessió tancada",
		CLINotLoggedIn:   "No hi ha cap sessió iniciada",
		CLIWhoami:        "%s <%s> rol %s",
		CLIExpires:       "El token caduca el %s",
		CLIEditHint:      "Deixa el camp buit per mantenir el valor actual",
		CLICancelled:     "Operació cancel·lada",

		PromptUsername:        "Nom d'usuari",
		PromptEmail:           "Correu electrònic",
		PromptPassword:        "Contrasenya: ",
		PromptConfirmPassword: "Confirma la contrasenya: ",
		PromptNewPassword:     "Nova contrasenya (buida per no canviar-la): ",
		PromptRole:            "Rol",
		PromptEnabled:         "Actiu (s/n)",
	},
	language.English: {
		LoginInvalid: "Invalid username or password",

		RegisterMismatch: "Passwords do not match",
		RegisterSuccess:  "Registration successful! Redirecting to login...",
		RegisterFailed:   "Registration failed. Please try again.",

		UsersLoadFailed:    "Error loading users",
		UsersUpdated:       "User updated successfully",
		UsersUpdateFailed:  "Error updating user",
		UsersConfirmDelete: "Are you sure you want to delete this user?",
		UsersDeleted:       "User deleted successfully",
		UsersDeleteFailed:  "Error deleting user",
		UsersNotFound:      "No user with id %d",
		UsersEmpty:         "No users",
		UsersCount:         "%d users",

		CLIWelcome:       "Welcome to jwtconsole (type 'help' for commands)",
		CLIHelpGuest:     "Available commands: login, register, exit",
		CLIHelpUser:      "Available commands: users, show <id>, edit <id>, delete <id>, whoami, logout, exit",
		CLILoginRequired: "Please log in first",
		CLIUnknown:       "Unknown command: %s",
		CLIUsage:         "Usage: %s",
		CLIInvalidID:     "Invalid id: %s",
		CLIBye:           "Bye!",
		CLILoggedIn:      "Logged in as %s",
		CLILoggedOut:     "Logged out",
		CLINotLoggedIn:   "Not logged in",
		CLIWhoami:        "%s <%s> role %s",
		CLIExpires:       "Token expires at %s",
		CLIEditHint:      "Leave a field empty to keep its current value",
		CLICancelled:     "Cancelled",

		PromptUsername:        "Username",
		PromptEmail:           "Email",
		PromptPassword:        "Password: ",
		PromptConfirmPassword: "Confirm password: ",
		PromptNewPassword:     "New password (empty to keep): ",
		PromptRole:            "Role",
		PromptEnabled:         "Enabled (y/n)",
	},
}

var (
	supported = []language.Tag{language.Catalan, language.English}
	matcher   = language.NewMatcher(supported)
	builder   = catalog.NewBuilder(catalog.Fallback(language.Catalan))
)

func init() {
	for tag, msgs := range messages {
		for key, text := range msgs {
			if err := builder.SetString(tag, key, text); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
}

// Translator renders a message key with optional arguments.
type Translator interface {
	T(key string, args ...any) string
}

// Printer is a Translator bound to one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Printer for locale ("ca", "en", "en-GB", ...). Locales that
// match neither catalog are an error.
func New(locale string) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	tag = supported[idx]
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(builder))}, nil
}

// Default returns the Catalan printer.
func Default() *Printer {
	p, _ := New("ca")
	return p
}

func (p *Printer) Language() language.Tag { return p.tag }

func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
