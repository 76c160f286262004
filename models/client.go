package models

import "time"

type Client struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	CurrentOrders []*Order `json:"current_orders,omitempty"`
}

// MakeOrder creates a new order owned by the client and records it in the
// client's order list.
func (c *Client) MakeOrder(orderID int, items []Furniture, deliveryDate time.Time) *Order {
	order := NewOrder(orderID, c, items, time.Now(), deliveryDate)
	c.CurrentOrders = append(c.CurrentOrders, order)
	return order
}
