package app

import (
	"context"
	"fmt"
	"strings"
)

// LoadOrders fetches the order history and rebuilds the orders panel, one
// line per order. An empty (or non-list) response shows a placeholder; the
// panel is revealed either way.
func (a *App) LoadOrders(ctx context.Context) {
	orders, err := a.shop.ListOrders(ctx)
	if err != nil {
		a.logger.Printf("load orders: %v", err)
		a.alerts.Alert("Failed to load orders")
		return
	}

	if len(orders) == 0 {
		a.page.OrdersList.SetText("No orders found.")
		a.page.OrdersPanel.Show()
		return
	}

	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%s x %d", it.Product.Name, it.Quantity))
		}
		lines = append(lines, fmt.Sprintf("Order #%d → [ %s ] — Total %d",
			o.ID, strings.Join(items, ", "), o.Total))
	}
	a.page.OrdersList.SetText(strings.Join(lines, "\n"))
	a.page.OrdersPanel.Show()
}

// CloseOrders hides the order-history panel.
func (a *App) CloseOrders() {
	a.page.OrdersPanel.Hide()
}
