// Package cart is the client-side shopping cart: a pure, single-writer
// state container that lives for the session and is serialized into an
// order-creation payload at checkout. Nothing here touches storage.
package cart

import "stylehub-be/internal/order"

// TaxRate is the fixed multiplier applied at checkout.
const TaxRate = 0.08

type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the selected items. Line identity is product+size, so two
// sizes of the same product are independent lines.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges the quantity into an existing product+size line, or
// appends a new line.
func (c *Cart) AddItem(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID && c.items[i].Size == item.Size {
			c.items[i].Quantity += item.Quantity
			return
		}
	}

	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity of the product+size line; qty <= 0
// removes the line.
func (c *Cart) UpdateQuantity(productID int, size string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID, size)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Size == size {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(productID int, size string) {
	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Size == size {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total recomputes the pre-tax sum on every call; cart-sized N makes
// incremental maintenance pointless.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// ToNewOrder serializes the cart into an order-creation payload with
// the fixed tax applied. The server stores the amount as submitted.
func (c *Cart) ToNewOrder(addr order.ShippingAddress, paymentMethod string) order.NewOrder {
	items := make([]order.NewOrderItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, order.NewOrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	return order.NewOrder{
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		TotalAmount:     c.Total() * (1 + TaxRate),
	}
}
