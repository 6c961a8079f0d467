package shop

import (
	"context"
	"fmt"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/api"
)

// Client exposes one method per backend endpoint on top of the base API
// client. Response decoding inherits the base client's tolerance: missing or
// malformed bodies come back as zero values, and HTTP status codes are not
// consulted.
type Client struct {
	api *api.Client
}

func NewClient(c *api.Client) *Client { return &Client{api: c} }

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	body, err := c.api.Get(ctx, "/products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var products []Product
	body.Decode(&products)
	return products, nil
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int) error {
	_, err := c.api.Post(ctx, "/cart/add", AddItemRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

func (c *Client) GetCart(ctx context.Context) (Cart, error) {
	body, err := c.api.Get(ctx, "/cart")
	if err != nil {
		return Cart{}, fmt.Errorf("get cart: %w", err)
	}
	var cart Cart
	body.Decode(&cart)
	return cart, nil
}

// RemoveLine deletes a cart line by its 1-based position in the last rendered
// cart. The backend keys removal positionally, not by a stable line id, so
// overlapping removals can target the wrong line; callers own that hazard.
func (c *Client) RemoveLine(ctx context.Context, position int) error {
	_, err := c.api.Delete(ctx, "/cart/remove/"+strconv.Itoa(position))
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}

// Checkout converts the current server-side cart into an order. The backend
// wraps the order as {"order": {...}} but a bare order object is accepted
// too; normalization to Order happens here so callers see a single shape.
func (c *Client) Checkout(ctx context.Context) (Order, error) {
	body, err := c.api.Post(ctx, "/orders", nil)
	if err != nil {
		return Order{}, fmt.Errorf("checkout: %w", err)
	}

	var envelope struct {
		Order *Order `json:"order"`
	}
	body.Decode(&envelope)
	if envelope.Order != nil {
		return *envelope.Order, nil
	}

	var bare Order
	body.Decode(&bare)
	return bare, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	body, err := c.api.Get(ctx, "/orders")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	// A non-array body decodes to nil, which callers treat as no orders.
	var orders []Order
	body.Decode(&orders)
	return orders, nil
}

func (c *Client) Signup(ctx context.Context, username, password string) error {
	_, err := c.api.Post(ctx, "/users", Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Login authenticates and returns the session token from the response.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := c.api.Post(ctx, "/users/login", Credentials{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	var res struct {
		Token string `json:"token"`
	}
	body.Decode(&res)
	return res.Token, nil
}
