package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name      string
		event     domain.OrderEvent
		wantLabel domain.OccupancyLabel
	}{
		{
			name: "placed order marks the table new_order",
			event: domain.OrderEvent{
				Type: domain.EventOrderPlaced, OrderID: 40, TableID: 2, RestaurantID: 1,
				Status: domain.StatusPlaced,
			},
			wantLabel: domain.OccupancyNewOrder,
		},
		{
			name: "status change to under_process marks it preparing",
			event: domain.OrderEvent{
				Type: domain.EventOrderStatus, OrderID: 40, TableID: 2, RestaurantID: 1,
				Status: domain.StatusUnderProcess,
			},
			wantLabel: domain.OccupancyPreparing,
		},
		{
			name: "payment frees the table",
			event: domain.OrderEvent{
				Type: domain.EventOrderStatus, OrderID: 40, TableID: 2, RestaurantID: 1,
				Status: domain.StatusPaid,
			},
			wantLabel: domain.OccupancyVacant,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			board := mocks.NewOccupancyCache(t)
			consumer := service.NewConsumer(nil, board)

			board.On("SetLabel", mock.Anything, 1, 2, testCase.wantLabel).Return(nil).Once()

			consumer.Process(context.Background(), testCase.event)
		})
	}
}

func TestConsumer_Process_IgnoresUnknownEventTypes(t *testing.T) {
	board := mocks.NewOccupancyCache(t)
	consumer := service.NewConsumer(nil, board)

	// No SetLabel expectation: an unrelated event must not touch the board.
	consumer.Process(context.Background(), domain.OrderEvent{
		Type: "menu_updated", TableID: 2, RestaurantID: 1,
	})

	assert.True(t, board.AssertNotCalled(t, "SetLabel"))
}
