package roles

import (
	"time"

	"furniture-delivery/models"
	"furniture-delivery/statemachine"
)

// OfficeAdministrator accepts incoming orders and schedules delivery.
type OfficeAdministrator struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	ReceivedOrders []*models.Order `json:"received_orders,omitempty"`
}

// AcceptOrder moves the order into delivery and fixes its planned date.
func (a *OfficeAdministrator) AcceptOrder(order *models.Order, plannedDeliveryDate time.Time) error {
	if err := statemachine.CanTransition(order.Status, models.StatusInDelivery, "administrator"); err != nil {
		return err
	}
	order.Status = models.StatusInDelivery
	order.PlannedDeliveryDate = plannedDeliveryDate
	a.ReceivedOrders = append(a.ReceivedOrders, order)
	return nil
}

// Dispatcher completes or cancels deliveries.
type Dispatcher struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Phone  string          `json:"phone"`
	Orders []*models.Order `json:"orders,omitempty"`
}

// DeliverOrder marks the order delivered and stamps the actual delivery time.
func (d *Dispatcher) DeliverOrder(order *models.Order) error {
	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, "dispatcher"); err != nil {
		return err
	}
	now := time.Now()
	order.Status = models.StatusDelivered
	order.ActualDeliveryDate = &now
	return nil
}

// CancelOrder cancels the order and records the reason.
func (d *Dispatcher) CancelOrder(order *models.Order, reason string) error {
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "dispatcher"); err != nil {
		return err
	}
	order.Status = models.StatusCancelled
	order.CancellationReason = reason
	return nil
}
