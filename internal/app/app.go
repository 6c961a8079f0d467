package app

import (
	"log"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/shop"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/ui"
)

// state is everything the session holds in memory: the token from the last
// login, the catalog as last fetched, and the cart as last reported by the
// server. The cart is never computed locally; every mutation re-fetches it,
// so it always mirrors the last successful server response. Nothing here
// survives process exit.
type state struct {
	token    string
	products []shop.Product
	cart     shop.Cart
}

// App owns the session state and drives every view from it. Each operation
// is a round-trip followed by a local state replacement and a re-render;
// failures are converted on the spot into an alert or a status message and
// never propagate to the caller.
type App struct {
	shop   *shop.Client
	page   *ui.Page
	alerts ui.Alerter
	logger *log.Logger

	state state
}

func New(client *shop.Client, page *ui.Page, alerts ui.Alerter, logger *log.Logger) *App {
	return &App{
		shop:   client,
		page:   page,
		alerts: alerts,
		logger: logger,
	}
}

// Token reports the current session token, empty when logged out.
func (a *App) Token() string { return a.state.token }

// Cart reports the current local cart snapshot.
func (a *App) Cart() shop.Cart { return a.state.cart }

// Page exposes the display regions, mainly for rendering and tests.
func (a *App) Page() *ui.Page { return a.page }
