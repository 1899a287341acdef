package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.OrderPending, entity.OrderPreparing, true},
		{entity.OrderPending, entity.OrderCancelled, true},
		{entity.OrderPending, entity.OrderServed, false},
		{entity.OrderPending, entity.OrderReady, false},
		{entity.OrderPreparing, entity.OrderReady, true},
		{entity.OrderPreparing, entity.OrderCancelled, true},
		{entity.OrderPreparing, entity.OrderServed, false},
		{entity.OrderReady, entity.OrderServed, true},
		{entity.OrderReady, entity.OrderCancelled, true},
		{entity.OrderReady, entity.OrderPending, false},
		{entity.OrderServed, entity.OrderCompleted, true},
		{entity.OrderServed, entity.OrderPending, true}, // addItems regression
		{entity.OrderServed, entity.OrderCancelled, true},
		{entity.OrderCompleted, entity.OrderCancelled, false},
		{entity.OrderCompleted, entity.OrderPending, false},
		{entity.OrderCancelled, entity.OrderPending, false},
		{entity.OrderCancelled, entity.OrderCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		entity.OrderPending, entity.OrderPreparing, entity.OrderReady,
		entity.OrderServed, entity.OrderCompleted, entity.OrderCancelled,
	} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("eaten"))
	assert.False(t, ValidOrderStatus(""))
}
