package statemachine

import (
	"errors"

	"furniture-delivery/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "administrator", "dispatcher", "client"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Office administrator accepts the order for delivery
	{From: models.StatusProcessing, To: models.StatusInDelivery, Actor: "administrator"},
	// Dispatcher or Client can cancel an order still in Processing
	{From: models.StatusProcessing, To: models.StatusCancelled, Actor: "dispatcher"},
	{From: models.StatusProcessing, To: models.StatusCancelled, Actor: "client"},
	// Dispatcher completes the delivery
	{From: models.StatusInDelivery, To: models.StatusDelivered, Actor: "dispatcher"},
	// Dispatcher can still cancel while the order is out for delivery
	{From: models.StatusInDelivery, To: models.StatusCancelled, Actor: "dispatcher"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
