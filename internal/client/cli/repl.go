package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                    show available commands
//	  - login                   authenticate
//	  - register                create an account
//	  - whoami                  show the current session
//	  - exit | quit             leave the program
//
//	Logged in (otherwise the user is asked to log in):
//	  - users | list            list users
//	  - show <id>               show one user
//	  - edit <id>               edit one user
//	  - delete <id>             delete one user after confirmation
//	  - logout                  drop the session
//
// Errors returned by command handlers are ignored here; handlers report them
// to the user themselves.
func runREPL(ctx context.Context, a execIface, tr i18n.Translator, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("jwtconsole %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(tr.T(i18n.CLIHelpUser))
			} else {
				printlnFn(tr.T(i18n.CLIHelpGuest))
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "users", "list", "show", "edit", "delete", "logout":
			if !a.isLoggedIn(ctx) {
				printlnFn(tr.T(i18n.CLILoginRequired))
				continue
			}
			dispatchUserCommand(ctx, a, tr, cmd, args)

		case "exit", "quit":
			printlnFn(tr.T(i18n.CLIBye))
			return

		default:
			printlnFn(tr.T(i18n.CLIUnknown, cmd))
		}
	}
}

func dispatchUserCommand(ctx context.Context, a execIface, tr i18n.Translator, cmd string, args []string) {
	switch cmd {
	case "users", "list":
		_ = a.List(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		if len(args) != 1 {
			printlnFn(tr.T(i18n.CLIUsage, cmd+" <id>"))
			return
		}
		switch cmd {
		case "show":
			_ = a.Show(ctx, args[0])
		case "edit":
			_ = a.Edit(ctx, args[0])
		case "delete":
			_ = a.Delete(ctx, args[0])
		}
	}
}
