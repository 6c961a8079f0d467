package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/api"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/shop"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/shoptest"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/ui"
)

type recordingAlerter struct {
	alerts []string
}

func (a *recordingAlerter) Alert(msg string) {
	a.alerts = append(a.alerts, msg)
}

func (a *recordingAlerter) last() string {
	if len(a.alerts) == 0 {
		return ""
	}
	return a.alerts[len(a.alerts)-1]
}

func newTestApp(t *testing.T, handler http.Handler) (*App, *recordingAlerter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := shop.NewClient(api.NewClient(srv.URL, &http.Client{Timeout: 5 * time.Second}))
	alerts := &recordingAlerter{}
	a := New(client, ui.NewPage(), alerts, log.New(io.Discard, "", 0))
	return a, alerts, srv
}

func defaultBackend() *shoptest.Server {
	return shoptest.New(
		shoptest.Product{ID: 1, Name: "T-shirt", Price: 399},
		shoptest.Product{ID: 2, Name: "Jeans", Price: 1299},
	)
}

func TestLoadProducts_RendersCatalog(t *testing.T) {
	backend := shoptest.New(
		shoptest.Product{ID: 1, Name: "A", Price: 10},
		shoptest.Product{ID: 2, Name: "B", Price: 20},
	)
	a, _, _ := newTestApp(t, backend)

	a.LoadProducts(context.Background())

	entries := strings.Split(a.Page().Products.Text(), "\n")
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "10")
	assert.Contains(t, entries[0], "A")
	assert.Contains(t, entries[1], "20")
	assert.Contains(t, entries[1], "B")
}

func TestLoadProducts_FailureShowsStaticMessage(t *testing.T) {
	a, _, srv := newTestApp(t, defaultBackend())
	srv.Close()

	a.LoadProducts(context.Background())

	assert.Equal(t, "Failed to load products", a.Page().Products.Text())
}

func TestAddToCart_MirrorsServerTotal(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 2)

	assert.Equal(t, 798, a.Cart().Total)
	require.Len(t, a.Cart().Items, 1)
	assert.Equal(t, 2, a.Cart().Items[0].Quantity)
	assert.True(t, a.Page().CartPanel.Visible())
	assert.Equal(t, "2", a.Page().CartBadge.Text())
}

func TestAddToCart_FailureLeavesCartStale(t *testing.T) {
	backend := defaultBackend()
	a, alerts, srv := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 1)
	require.Equal(t, 399, a.Cart().Total)

	srv.Close()
	a.AddToCart(context.Background(), 2, 1)

	assert.Equal(t, "Add to cart failed", alerts.last())
	assert.Equal(t, 399, a.Cart().Total)
}

func TestShowCart_BadgeEqualsQuantitySum(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 2)
	a.AddToCart(context.Background(), 2, 3)

	assert.Equal(t, "5", a.Page().CartBadge.Text())
	assert.Equal(t, 5, a.Cart().ItemCount())
}

func TestShowCart_FailureKeepsPanelClosed(t *testing.T) {
	a, alerts, srv := newTestApp(t, defaultBackend())
	srv.Close()

	a.ShowCart(context.Background())

	assert.Equal(t, "Cart fetch failed", alerts.last())
	assert.False(t, a.Page().CartPanel.Visible())
}

func TestRemoveFromCart_RefetchesMirror(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 1)
	a.AddToCart(context.Background(), 2, 1)
	require.Len(t, a.Cart().Items, 2)

	a.RemoveFromCart(context.Background(), 1)

	require.Len(t, a.Cart().Items, 1)
	assert.Equal(t, "Jeans", a.Cart().Items[0].Product.Name)
	assert.Equal(t, 1299, a.Cart().Total)
}

func TestCheckout_EmptyCartMakesNoRequests(t *testing.T) {
	backend := defaultBackend()
	a, alerts, _ := newTestApp(t, backend)

	a.Checkout(context.Background())

	assert.Equal(t, 0, backend.Requests())
	assert.Contains(t, alerts.last(), "empty")
}

func TestCheckout_MakesExactlyOneRequest(t *testing.T) {
	backend := defaultBackend()
	a, alerts, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 1)
	before := backend.Requests()

	a.Checkout(context.Background())

	assert.Equal(t, before+1, backend.Requests())
	assert.Contains(t, alerts.last(), "Order #1")
	assert.Contains(t, alerts.last(), "399")
}

func TestCheckout_ResetsLocalCartAndClosesPanel(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 2)
	a.Checkout(context.Background())

	assert.True(t, a.Cart().Empty())
	assert.False(t, a.Page().CartPanel.Visible())
	assert.Equal(t, "0", a.Page().CartBadge.Text())
	assert.Empty(t, backend.CartLines())
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	backend := defaultBackend()
	a, alerts, srv := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 1)
	srv.Close()

	a.Checkout(context.Background())

	assert.Equal(t, "Checkout failed", alerts.last())
	assert.Equal(t, 399, a.Cart().Total)
	require.Len(t, a.Cart().Items, 1)
}

func TestCheckout_BareOrderResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"Product":{"ID":1,"Name":"A","Price":30},"Quantity":1}],"total":30}`))
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ID":5,"Total":30}`))
	})
	a, alerts, _ := newTestApp(t, mux)

	a.ShowCart(context.Background())
	a.Checkout(context.Background())

	assert.Equal(t, "Order #5 placed. Total 30", alerts.last())
}

func TestCheckout_TotalFallsBackToCachedCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"Product":{"ID":1,"Name":"A","Price":42},"Quantity":1}],"total":42}`))
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		// No order payload at all.
	})
	a, alerts, _ := newTestApp(t, mux)

	a.ShowCart(context.Background())
	a.Checkout(context.Background())

	assert.Equal(t, "Order placed. Total 42", alerts.last())
}

func TestLoadOrders_EmptyListShowsPlaceholder(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.LoadOrders(context.Background())

	assert.Equal(t, "No orders found.", a.Page().OrdersList.Text())
	assert.True(t, a.Page().OrdersPanel.Visible())
}

func TestLoadOrders_RendersSummaryLines(t *testing.T) {
	backend := defaultBackend()
	backend.SeedOrders(shoptest.Order{
		ID: 3,
		Items: []shoptest.CartItem{
			{Product: shoptest.Product{ID: 1, Name: "T-shirt", Price: 399}, Quantity: 2},
			{Product: shoptest.Product{ID: 2, Name: "Jeans", Price: 1299}, Quantity: 1},
		},
		Total: 2097,
	})
	a, _, _ := newTestApp(t, backend)

	a.LoadOrders(context.Background())

	text := a.Page().OrdersList.Text()
	assert.Contains(t, text, "Order #3")
	assert.Contains(t, text, "T-shirt x 2, Jeans x 1")
	assert.Contains(t, text, "Total 2097")
	assert.True(t, a.Page().OrdersPanel.Visible())
}

func TestLoadOrders_FailureAlerts(t *testing.T) {
	a, alerts, srv := newTestApp(t, defaultBackend())
	srv.Close()

	a.LoadOrders(context.Background())

	assert.Equal(t, "Failed to load orders", alerts.last())
	assert.False(t, a.Page().OrdersPanel.Visible())
}

func TestLogin_StoresServerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-123"}`))
	})
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	a, _, _ := newTestApp(t, mux)

	a.Login(context.Background(), "alice", "secret")

	assert.Equal(t, "tok-123", a.Token())
	assert.Equal(t, "Logged in", a.Page().AuthStatus.Text())
	assert.True(t, a.Page().LogoutCtl.Visible())
	assert.True(t, a.Page().ViewOrders.Visible())
}

func TestLogin_FailureStoresNoToken(t *testing.T) {
	a, _, srv := newTestApp(t, defaultBackend())
	srv.Close()

	a.Login(context.Background(), "alice", "secret")

	assert.Empty(t, a.Token())
	assert.Equal(t, "Login failed", a.Page().AuthStatus.Text())
	assert.False(t, a.Page().LogoutCtl.Visible())
}

func TestSignupThenLogin_AgainstBackend(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.Signup(context.Background(), "alice", "secret")
	assert.Equal(t, "Signup success — now login", a.Page().AuthStatus.Text())

	a.Login(context.Background(), "alice", "secret")
	assert.NotEmpty(t, a.Token())
}

func TestLogout_ClearsTokenAndControls(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.Signup(context.Background(), "alice", "secret")
	a.Login(context.Background(), "alice", "secret")
	require.NotEmpty(t, a.Token())

	a.Logout()

	assert.Empty(t, a.Token())
	assert.False(t, a.Page().LogoutCtl.Visible())
	assert.False(t, a.Page().ViewOrders.Visible())
	assert.Equal(t, "Logged out", a.Page().AuthStatus.Text())
}

func TestCloseCartAndOrders(t *testing.T) {
	backend := defaultBackend()
	a, _, _ := newTestApp(t, backend)

	a.AddToCart(context.Background(), 1, 1)
	require.True(t, a.Page().CartPanel.Visible())
	a.CloseCart()
	assert.False(t, a.Page().CartPanel.Visible())

	a.LoadOrders(context.Background())
	require.True(t, a.Page().OrdersPanel.Visible())
	a.CloseOrders()
	assert.False(t, a.Page().OrdersPanel.Visible())
}
