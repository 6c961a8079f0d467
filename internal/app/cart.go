package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/shop"
)

// AddToCart posts one line to the server cart and then re-fetches the whole
// cart; the local snapshot is only ever replaced by a server response. On
// failure the snapshot stays as it was, stale but consistent.
func (a *App) AddToCart(ctx context.Context, productID, quantity int) {
	if err := a.shop.AddToCart(ctx, productID, quantity); err != nil {
		a.logger.Printf("add to cart: %v", err)
		a.alerts.Alert("Add to cart failed")
		return
	}
	a.ShowCart(ctx)
}

// ShowCart fetches the server cart, replaces the local snapshot, re-renders
// the cart lines and total, opens the cart panel and refreshes the badge.
func (a *App) ShowCart(ctx context.Context) {
	cart, err := a.shop.GetCart(ctx)
	if err != nil {
		a.logger.Printf("get cart: %v", err)
		a.alerts.Alert("Cart fetch failed")
		return
	}

	a.state.cart = cart
	a.renderCart()
	a.page.CartPanel.Show()
	a.updateCartCount()
}

// RemoveFromCart deletes by the line's 1-based position in the rendered cart
// and re-fetches. The position is recomputed from render order, not a stable
// line id, so rapid successive removals can race their own re-fetch and hit
// the wrong line. Known hazard in the backend contract, kept as is.
func (a *App) RemoveFromCart(ctx context.Context, position int) {
	if err := a.shop.RemoveLine(ctx, position); err != nil {
		a.logger.Printf("remove cart line %d: %v", position, err)
		a.alerts.Alert("Remove failed")
		return
	}
	a.ShowCart(ctx)
}

// Checkout turns the current server-side cart into an order. With an empty
// local cart it aborts before any network call. On success the local cart is
// reset, the panel closed and the badge zeroed; on failure everything is left
// untouched.
func (a *App) Checkout(ctx context.Context) {
	if a.state.cart.Empty() {
		a.alerts.Alert("Cart is empty, nothing to check out")
		return
	}

	order, err := a.shop.Checkout(ctx)
	if err != nil {
		a.logger.Printf("checkout: %v", err)
		a.alerts.Alert("Checkout failed")
		return
	}

	total := order.Total
	if total == 0 {
		// Response carried no usable total, fall back to the cached cart's.
		total = a.state.cart.Total
	}
	if order.ID != 0 {
		a.alerts.Alert(fmt.Sprintf("Order #%d placed. Total %d", order.ID, total))
	} else {
		a.alerts.Alert(fmt.Sprintf("Order placed. Total %d", total))
	}

	a.state.cart = shop.Cart{}
	a.renderCart()
	a.page.CartPanel.Hide()
	a.updateCartCount()
}

// CloseCart hides the cart panel without touching state.
func (a *App) CloseCart() {
	a.page.CartPanel.Hide()
}

func (a *App) renderCart() {
	lines := make([]string, 0, len(a.state.cart.Items))
	for i, it := range a.state.cart.Items {
		lines = append(lines, fmt.Sprintf("%d) %s x %d — %d  (remove %d)",
			i+1, it.Product.Name, it.Quantity, it.Product.Price, i+1))
	}
	a.page.CartItems.SetText(strings.Join(lines, "\n"))
	a.page.CartTotal.SetText(fmt.Sprintf("Total: %d", a.state.cart.Total))
}

func (a *App) updateCartCount() {
	a.page.CartBadge.SetText(strconv.Itoa(a.state.cart.ItemCount()))
}
