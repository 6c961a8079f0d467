package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/app"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/ui"
)

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string)
}

// REPL is the interaction layer: it binds each command name to exactly one
// handler when constructed, reads argument values at invocation time, and
// re-renders the page after every command. The analog of wiring click
// handlers once at page load.
type REPL struct {
	app      *app.App
	alerts   ui.Alerter
	in       io.Reader
	out      io.Writer
	commands map[string]command
}

func New(a *app.App, alerts ui.Alerter, in io.Reader, out io.Writer) *REPL {
	r := &REPL{
		app:    a,
		alerts: alerts,
		in:     in,
		out:    out,
	}
	r.bind()
	return r
}

func (r *REPL) bind() {
	r.commands = map[string]command{
		"products": {
			usage: "products",
			help:  "reload and show the catalog",
			run:   func(ctx context.Context, _ []string) { r.app.LoadProducts(ctx) },
		},
		"add": {
			usage: "add <product-id> [quantity]",
			help:  "add a product to the cart",
			run:   r.add,
		},
		"cart": {
			usage: "cart",
			help:  "fetch and open the cart",
			run:   func(ctx context.Context, _ []string) { r.app.ShowCart(ctx) },
		},
		"remove": {
			usage: "remove <line>",
			help:  "remove a cart line by its listed position",
			run:   r.remove,
		},
		"checkout": {
			usage: "checkout",
			help:  "place an order from the current cart",
			run:   func(ctx context.Context, _ []string) { r.app.Checkout(ctx) },
		},
		"orders": {
			usage: "orders",
			help:  "show past orders",
			run:   func(ctx context.Context, _ []string) { r.app.LoadOrders(ctx) },
		},
		"close-cart": {
			usage: "close-cart",
			help:  "close the cart panel",
			run:   func(context.Context, []string) { r.app.CloseCart() },
		},
		"close-orders": {
			usage: "close-orders",
			help:  "close the orders panel",
			run:   func(context.Context, []string) { r.app.CloseOrders() },
		},
		"signup": {
			usage: "signup <username> <password>",
			help:  "create an account",
			run: func(ctx context.Context, args []string) {
				if u, p, ok := r.credentials(args); ok {
					r.app.Signup(ctx, u, p)
				}
			},
		},
		"login": {
			usage: "login <username> <password>",
			help:  "log in",
			run: func(ctx context.Context, args []string) {
				if u, p, ok := r.credentials(args); ok {
					r.app.Login(ctx, u, p)
				}
			},
		},
		"logout": {
			usage: "logout",
			help:  "log out (local only)",
			run:   func(context.Context, []string) { r.app.Logout() },
		},
		"help": {
			usage: "help",
			help:  "list commands",
			run:   func(context.Context, []string) { r.printHelp() },
		},
	}
}

func (r *REPL) add(ctx context.Context, args []string) {
	if len(args) < 1 {
		r.alerts.Alert("Usage: add <product-id> [quantity]")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		r.alerts.Alert("Product id must be a number")
		return
	}
	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q <= 0 {
			r.alerts.Alert("Quantity must be a positive number")
			return
		}
		quantity = q
	}
	r.app.AddToCart(ctx, id, quantity)
}

func (r *REPL) remove(ctx context.Context, args []string) {
	if len(args) < 1 {
		r.alerts.Alert("Usage: remove <line>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		r.alerts.Alert("Line must be a positive number")
		return
	}
	r.app.RemoveFromCart(ctx, pos)
}

// credentials reads username and password from args and rejects empty values
// before any network call is made.
func (r *REPL) credentials(args []string) (username, password string, ok bool) {
	if len(args) >= 1 {
		username = strings.TrimSpace(args[0])
	}
	if len(args) >= 2 {
		password = strings.TrimSpace(args[1])
	}
	if username == "" || password == "" {
		r.alerts.Alert("Enter username & password")
		return "", "", false
	}
	return username, password, true
}

// Dispatch runs a single command line against the bound handlers and
// re-renders the page.
func (r *REPL) Dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, ok := r.commands[fields[0]]
	if !ok {
		r.alerts.Alert("Unknown command: " + fields[0] + " (try help)")
		return
	}
	cmd.run(ctx, fields[1:])
	r.app.Page().Render(r.out)
}

// Run wires up, performs the initial catalog fetch and loops over input lines
// until EOF, "quit" or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	r.app.LoadProducts(ctx)
	r.app.Page().Render(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		r.Dispatch(ctx, line)
	}
	return scanner.Err()
}

func (r *REPL) printHelp() {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := r.commands[name]
		fmt.Fprintf(r.out, "  %-32s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(r.out, "  %-32s %s\n", "quit", "leave the session")
}
