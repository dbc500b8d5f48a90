package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fdatrack/fdatrack/internal/client/api"
	"github.com/fdatrack/fdatrack/internal/client/captcha"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Stats(ctx context.Context) error
	Companies(ctx context.Context, args []string) error
	Company(ctx context.Context, args []string) error
	Inspections(ctx context.Context, args []string) error
	Form483s(ctx context.Context, args []string) error
	Form483(ctx context.Context, args []string) error
	DownloadForm483(ctx context.Context, args []string) error
	ArchiveForm483(ctx context.Context, args []string) error
	WarningLetters(ctx context.Context, args []string) error
	Investigators(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the fdatrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers return their errors; the loop renders them and keeps
// going, so a failed request never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fda> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: stats, companies, company, inspections, f483 [show|get|archive], wl, inv, watch [add|list|rm], whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "stats":
			err = a.Stats(ctx)

		case "companies":
			err = a.Companies(ctx, args)

		case "company":
			err = a.Company(ctx, args)

		case "inspections":
			err = a.Inspections(ctx, args)

		case "f483":
			switch {
			case len(args) > 0 && args[0] == "show":
				err = a.Form483(ctx, args[1:])
			case len(args) > 0 && args[0] == "get":
				err = a.DownloadForm483(ctx, args[1:])
			case len(args) > 0 && args[0] == "archive":
				err = a.ArchiveForm483(ctx, args[1:])
			default:
				err = a.Form483s(ctx, args)
			}

		case "wl":
			err = a.WarningLetters(ctx, args)

		case "inv":
			err = a.Investigators(ctx, args)

		case "watch":
			err = a.Watch(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(renderError(err))
		}
	}
}

// renderError translates pipeline and lifecycle errors into user-facing
// messages.
func renderError(err error) string {
	var rl *api.RateLimitError
	var auth *api.AuthenticationError

	switch {
	case errors.As(err, &rl):
		if rl.RetryAfter != nil {
			return fmt.Sprintf("Too many requests, retry in %s.", *rl.RetryAfter)
		}
		return "Too many requests, slow down."
	case errors.As(err, &auth):
		return auth.Message
	case errors.Is(err, api.ErrNoSession), errors.Is(err, api.ErrUnauthorized):
		return "Not logged in."
	case errors.Is(err, captcha.ErrChallengeUnavailable):
		return "Verification challenge unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}
