package statemachine

import (
	"testing"

	"campus-canteen-api/models"

	"github.com/stretchr/testify/assert"
)

func TestActiveTerminalPartitionIsTotalAndExclusive(t *testing.T) {
	for _, s := range AllStatuses {
		assert.NotEqual(t, IsActive(s), IsTerminal(s), "status %s must be exactly one of active/terminal", s)
	}
	assert.True(t, IsActive(models.StatusPending))
	assert.True(t, IsActive(models.StatusPreparing))
	assert.True(t, IsActive(models.StatusReady))
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{name: "pending to preparing", from: models.StatusPending, to: models.StatusPreparing},
		{name: "pending to cancelled", from: models.StatusPending, to: models.StatusCancelled},
		{name: "preparing to ready", from: models.StatusPreparing, to: models.StatusReady},
		{name: "ready to delivered", from: models.StatusReady, to: models.StatusDelivered},
		{name: "pending straight to delivered is irregular", from: models.StatusPending, to: models.StatusDelivered, wantErr: true},
		{name: "delivered cannot regress conventionally", from: models.StatusDelivered, to: models.StatusPending, wantErr: true},
		{name: "cancelled is conventionally terminal", from: models.StatusCancelled, to: models.StatusPreparing, wantErr: true},
		{name: "ready back to pending", from: models.StatusReady, to: models.StatusPending, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}
