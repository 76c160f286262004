package models

import "time"

// OrderStatus represents all possible states of a furniture delivery order
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusInDelivery OrderStatus = "InDelivery"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

type Order struct {
	ID                  int         `json:"id"`
	Client              *Client     `json:"client"`
	Items               []Furniture `json:"items"`
	OrderDate           time.Time   `json:"order_date"`
	PlannedDeliveryDate time.Time   `json:"planned_delivery_date"`
	ActualDeliveryDate  *time.Time  `json:"actual_delivery_date,omitempty"`
	Status              OrderStatus `json:"status"`
	CancellationReason  string      `json:"cancellation_reason,omitempty"`
}

// NewOrder builds an order in the initial Processing state.
func NewOrder(id int, client *Client, items []Furniture, orderDate, plannedDeliveryDate time.Time) *Order {
	return &Order{
		ID:                  id,
		Client:              client,
		Items:               items,
		OrderDate:           orderDate,
		PlannedDeliveryDate: plannedDeliveryDate,
		Status:              StatusProcessing,
	}
}

// IsOverdue reports whether the order missed its planned delivery:
// no actual delivery recorded and the planned date is before ref.
func (o *Order) IsOverdue(ref time.Time) bool {
	if o.ActualDeliveryDate != nil {
		return false
	}
	return o.PlannedDeliveryDate.Before(ref)
}
