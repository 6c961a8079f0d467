package ui

import (
	"fmt"
	"io"
)

// Region is a patch of the display: some text plus a visibility flag.
// Views overwrite region text wholesale on every render.
type Region struct {
	text    string
	visible bool
}

func (r *Region) SetText(s string) { r.text = s }
func (r *Region) Text() string     { return r.text }
func (r *Region) Show()            { r.visible = true }
func (r *Region) Hide()            { r.visible = false }
func (r *Region) Visible() bool    { return r.visible }

// Page holds the fixed set of regions the controllers write to, mirroring the
// layout of the original storefront: a product listing, a cart panel with its
// line items, total and badge, an order-history panel, and the auth controls.
type Page struct {
	Products    *Region
	CartItems   *Region
	CartTotal   *Region
	CartBadge   *Region
	CartPanel   *Region
	OrdersList  *Region
	OrdersPanel *Region
	AuthStatus  *Region
	LogoutCtl   *Region
	ViewOrders  *Region
}

// NewPage returns a page in its initial state: catalog visible, cart and
// orders panels closed, logout and view-orders controls hidden until login.
func NewPage() *Page {
	return &Page{
		Products:    &Region{visible: true},
		CartItems:   &Region{},
		CartTotal:   &Region{},
		CartBadge:   &Region{text: "0", visible: true},
		CartPanel:   &Region{},
		OrdersList:  &Region{},
		OrdersPanel: &Region{},
		AuthStatus:  &Region{visible: true},
		LogoutCtl:   &Region{},
		ViewOrders:  &Region{},
	}
}

// Render writes the currently visible parts of the page to w.
func (p *Page) Render(w io.Writer) {
	if p.AuthStatus.Visible() && p.AuthStatus.Text() != "" {
		fmt.Fprintf(w, "%s  (cart: %s)\n", p.AuthStatus.Text(), p.CartBadge.Text())
	} else {
		fmt.Fprintf(w, "cart: %s\n", p.CartBadge.Text())
	}

	if p.Products.Visible() && p.Products.Text() != "" {
		fmt.Fprintf(w, "\n-- Products --\n%s\n", p.Products.Text())
	}

	if p.CartPanel.Visible() {
		fmt.Fprintf(w, "\n-- Cart --\n%s\n%s\n", p.CartItems.Text(), p.CartTotal.Text())
	}

	if p.OrdersPanel.Visible() {
		fmt.Fprintf(w, "\n-- Orders --\n%s\n", p.OrdersList.Text())
	}
}

// Alerter delivers the blocking user-visible notifications the controllers
// raise on failure. The terminal implementation prints; tests record.
type Alerter interface {
	Alert(msg string)
}

type WriterAlerter struct {
	W io.Writer
}

func (a WriterAlerter) Alert(msg string) {
	fmt.Fprintf(a.W, "!! %s\n", msg)
}
