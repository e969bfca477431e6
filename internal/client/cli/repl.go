package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	ListUsers(ctx context.Context) error
	ShowSettings(ctx context.Context) error
	SetTitle(ctx context.Context, title string) error
	SetLogo(ctx context.Context, logoURL string) error
}

// runREPL starts a simple read–eval–print loop for the OliLab CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The rest of the line is the
// argument of set-title and set-logo. The loop exits on scanner EOF or when
// the user types "exit" or "quit".
//
//	Always:
//	  - help               show available commands
//	  - whoami             show the session state
//	  - refresh            reload the user collection
//	  - settings           show title and logo
//	  - set-title [text]   change the title
//	  - set-logo [url]     change the logo URL (empty clears it)
//	  - exit | quit        leave the program
//
//	Not logged in:
//	  - login              authenticate (username, email or LRN)
//
//	Logged in:
//	  - users              list users from the inventory
//	  - logout             end the session
//
// Errors returned by command handlers are printed verbatim; the API already
// phrases them for display.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("olilab (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, refresh, settings, set-title, set-logo, logout, exit")
			} else {
				printlnFn("Available commands: login, whoami, refresh, settings, set-title, set-logo, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "users":
			err = a.ListUsers(ctx)

		case "settings":
			err = a.ShowSettings(ctx)

		case "set-title":
			err = a.SetTitle(ctx, arg)

		case "set-logo":
			err = a.SetLogo(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
