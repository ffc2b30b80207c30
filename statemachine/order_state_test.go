package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-delivery-admin/models"
)

func TestForwardProgression(t *testing.T) {
	steps := []models.OrderStatus{
		models.StatusPlaced,
		models.StatusAccepted,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for i := 0; i < len(steps)-1; i++ {
		assert.NoError(t, CanTransition(steps[i], steps[i+1]))
	}
}

func TestNoSkippingOrBacktracking(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusPreparing))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusDelivered))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusAccepted))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusOutForDelivery))
}

func TestCancellationReachableFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []models.OrderStatus{
		models.StatusPlaced,
		models.StatusAccepted,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
	} {
		assert.NoError(t, CanTransition(from, models.StatusCancelled), "from %s", from)
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusCancelled))
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusCancelled))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestUnknownStatusRejected(t *testing.T) {
	assert.Error(t, CanTransition("SHIPPED", models.StatusDelivered))
	assert.Error(t, CanTransition(models.StatusPlaced, "SHIPPED"))
}

func TestValidTransitionsFromListsForwardThenCancel(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPlaced)
	assert.Equal(t, []models.OrderStatus{models.StatusAccepted, models.StatusCancelled}, nexts)
}
