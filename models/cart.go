package models

// CartItem holds a product snapshot plus the quantity the user asked for.
// Quantity is always >= 1; a cart never has two items with the same product id.
type CartItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Cart is the per-user cart aggregate, keyed by email (unique index).
// Version is bumped on every save and guards against concurrent writers.
type Cart struct {
	Email         string     `json:"email" bson:"email"`
	PaymentOption string     `json:"paymentOption" bson:"paymentOption"`
	CartItems     []CartItem `json:"cartItems" bson:"cartItems"`
	Version       int64      `json:"-" bson:"version"`
}

// FindItem returns the index of the item whose product id matches, or -1.
// Matching is by product id only, never by full snapshot equality.
func (c *Cart) FindItem(productID string) int {
	for i, item := range c.CartItems {
		if item.Product.ID.Hex() == productID {
			return i
		}
	}
	return -1
}

// Total is the sum of cost x quantity over all items.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.CartItems {
		sum += item.Product.Cost * float64(item.Quantity)
	}
	return sum
}
