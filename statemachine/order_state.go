// Package statemachine defines the order lifecycle rules enforced
// server-side. The admin client never consults these locally; it requests a
// transition and adopts whatever the server returns.
package statemachine

import (
	"errors"

	"food-delivery-admin/models"
)

// forward is the strictly forward-moving progression. Cancellation is handled
// separately: it is reachable from every non-terminal state.
var forward = map[models.OrderStatus]models.OrderStatus{
	models.StatusPlaced:         models.StatusAccepted,
	models.StatusAccepted:       models.StatusPreparing,
	models.StatusPreparing:      models.StatusReady,
	models.StatusReady:          models.StatusOutForDelivery,
	models.StatusOutForDelivery: models.StatusDelivered,
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	if next, ok := forward[status]; ok {
		nexts = append(nexts, next)
	}
	if !status.IsTerminal() {
		nexts = append(nexts, models.StatusCancelled)
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
func CanTransition(from, to models.OrderStatus) error {
	if !from.Valid() || !to.Valid() {
		return errors.New("unknown order status")
	}
	if to == models.StatusCancelled {
		if from.IsTerminal() {
			return errors.New("cannot cancel an order in terminal state " + string(from))
		}
		return nil
	}
	if forward[from] == to {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
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
