package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the minimal command surface the REPL needs. *App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Businesses(ctx context.Context) error
	Venue(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	Cities(ctx context.Context) error
	Wallet(ctx context.Context) error
	Whoami(ctx context.Context) error
	Avatar(ctx context.Context) error
	ApplyCreator(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches to a. Unknown commands
// are reported back; the loop ends on scanner EOF or "exit"/"quit". Command
// handlers print their own errors, so errors are ignored here to keep the
// loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "releve %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: businesses, venue <id>, categories, cities, wallet, whoami, avatar, apply, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "businesses":
			_ = a.Businesses(ctx)

		case "venue":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Venue(ctx, id)

		case "categories":
			_ = a.Categories(ctx)

		case "cities":
			_ = a.Cities(ctx)

		case "wallet":
			_ = a.Wallet(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "apply":
			_ = a.ApplyCreator(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
