package main

import (
	"context"
	"log"
	"time"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/service"
	"tableside/internal/storage"
)

const ordersTopic = "order-events"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(ordersTopic)
	defer kafkaWriter.Close()

	kafkaReader := config.NewKafkaReader(ordersTopic, "occupancy-board")
	defer kafkaReader.Close()

	tableRepo := storage.NewTableRepository(db)
	planRepo := storage.NewFloorPlanRepository(db)
	orderRepo := storage.NewOrderRepository(db)

	publisher := storage.NewKafkaPublisher(kafkaWriter)
	cache := storage.NewOccupancyCache(rdb, 15*time.Second)

	qrGenerator := service.DefaultQRGenerator{BaseURL: config.BaseURL()}

	orderService := service.NewOrderService(orderRepo, publisher)
	layoutService := service.NewLayoutService(planRepo)
	aggregatorService := service.NewAggregatorService(tableRepo, planRepo, orderRepo, cache)
	tableService := service.NewTableService(tableRepo, qrGenerator)

	consumer := service.NewConsumer(kafkaReader, cache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(orderService, layoutService, aggregatorService, tableService, cache)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Port("8080"), router)
}
