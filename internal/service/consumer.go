package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"tableside/internal/domain"
)

// Consumer projects order lifecycle events onto the Redis occupancy board,
// so dashboards poll one hash per restaurant instead of re-deriving status
// rules from raw orders.
type Consumer struct {
	Reader *kafka.Reader
	Board  OccupancyCache
}

func NewConsumer(reader *kafka.Reader, board OccupancyCache) *Consumer {
	return &Consumer{Reader: reader, Board: board}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting occupancy board consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderPlaced, domain.EventOrderStatus:
	default:
		return
	}

	label := DeriveTableOccupancy(&domain.Order{Status: event.Status})
	if err := c.Board.SetLabel(ctx, event.RestaurantID, event.TableID, label); err != nil {
		log.Printf("Error updating occupancy for table %d: %v", event.TableID, err)
		return
	}

	log.Printf("Occupancy updated: restaurant=%d table=%d label=%s",
		event.RestaurantID, event.TableID, label)
}
