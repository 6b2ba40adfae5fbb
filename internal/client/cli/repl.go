package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Under67/stellar-burgers/internal/client/store"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Catalog(ctx context.Context) error
	Add(ctx context.Context, ref string) error
	Remove(ctx context.Context, id string) error
	Move(ctx context.Context, index string, dir store.Direction) error
	Burger(ctx context.Context) error
	Order(ctx context.Context) error
	Dismiss(ctx context.Context) error

	Feed(ctx context.Context) error
	Orders(ctx context.Context) error
	Show(ctx context.Context, number string) error

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	Update(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpGuest = "Available commands: catalog, add <id|#>, remove <id>, up <n>, down <n>, burger, feed, show <number>, register, login, exit"
	helpUser  = "Available commands: catalog, add <id|#>, remove <id>, up <n>, down <n>, burger, order, dismiss, feed, orders, show <number>, profile, update, logout, exit"
)

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit". reader must be the same one the prompts of a read from, so
// piped input is consumed one line at a time.
//
// Commands that take an argument print their usage when it is missing.
// Errors returned by handlers are ignored here; handlers report them to the
// user themselves, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "stellar %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpUser)
			} else {
				fmt.Fprintln(out, helpGuest)
			}

		case "catalog", "c":
			_ = a.Catalog(ctx)

		case "add":
			if ref, ok := arg("add <id|#>"); ok {
				_ = a.Add(ctx, ref)
			}

		case "remove", "rm":
			if id, ok := arg("remove <id>"); ok {
				_ = a.Remove(ctx, id)
			}

		case "up":
			if n, ok := arg("up <n>"); ok {
				_ = a.Move(ctx, n, store.Up)
			}

		case "down":
			if n, ok := arg("down <n>"); ok {
				_ = a.Move(ctx, n, store.Down)
			}

		case "burger", "b":
			_ = a.Burger(ctx)

		case "order":
			_ = a.Order(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "show":
			if n, ok := arg("show <number>"); ok {
				_ = a.Show(ctx, n)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.Update(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
