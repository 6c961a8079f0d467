package app

import (
	"context"
	"fmt"
	"strings"
)

// LoadProducts replaces the cached catalog with the server's product list and
// re-renders it. On failure the catalog region shows a static message; there
// is no retry.
func (a *App) LoadProducts(ctx context.Context) {
	products, err := a.shop.ListProducts(ctx)
	if err != nil {
		a.logger.Printf("load products: %v", err)
		a.page.Products.SetText("Failed to load products")
		return
	}

	a.state.products = products
	a.renderProducts()
}

func (a *App) renderProducts() {
	lines := make([]string, 0, len(a.state.products))
	for _, p := range a.state.products {
		lines = append(lines, fmt.Sprintf("#%d %s — %d  (add %d)", p.ID, p.Name, p.Price, p.ID))
	}
	a.page.Products.SetText(strings.Join(lines, "\n"))
}
