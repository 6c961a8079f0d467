package shop

// Wire types for the shopping-cart backend. The backend serializes Go-cased
// field names (ID, Name, Price) while some responses use lowercase keys;
// encoding/json's case-insensitive field matching accepts both, so a single
// tag per field covers the two casing conventions in the wild.

type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// ItemCount sums line quantities, the number shown on the cart badge.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type Order struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

type AddItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
