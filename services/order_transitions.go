package services

import (
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

// transitions is the single source of truth for the order state machine.
// Terminal statuses have no entry. Every status-changing entry point routes
// through CanTransition.
var transitions = map[string][]string{
	entity.OrderPending:   {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderReady, entity.OrderCancelled},
	entity.OrderReady:     {entity.OrderServed, entity.OrderCancelled},
	// served regresses to pending when new items arrive (kitchen must
	// re-acknowledge); completed is reachable only via Complete.
	entity.OrderServed: {entity.OrderCompleted, entity.OrderPending, entity.OrderCancelled},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case entity.OrderPending, entity.OrderPreparing, entity.OrderReady,
		entity.OrderServed, entity.OrderCompleted, entity.OrderCancelled:
		return true
	}
	return false
}
