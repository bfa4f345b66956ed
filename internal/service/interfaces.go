package service

import (
	"context"
	"time"

	"tableside/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, tableID int, lines []domain.OrderLine) (*domain.Order, error)
	Advance(ctx context.Context, orderID int, requested domain.OrderStatus) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	Bill(orderID int) (*domain.Bill, error)
}

type LayoutServiceInterface interface {
	AddTable(planID int, placement domain.TablePlacement) (*domain.TablePlacement, error)
	Move(planID, tableID int, direction string, step int) (*domain.TablePlacement, error)
	Reposition(planID, tableID, x, y int) (*domain.TablePlacement, error)
	Resize(planID, tableID, width, height int) (*domain.TablePlacement, error)
	RemoveTable(planID, tableID int) error
	ResizeFloorPlan(planID, width, height int) (*domain.FloorPlan, error)
}

type AggregatorServiceInterface interface {
	ListTablesWithOrders(restaurantID int, floorNumber *int) ([]domain.TableView, error)
	ComputeStats(ctx context.Context, restaurantID int) (*domain.Stats, error)
}

type TableServiceInterface interface {
	Create(table *domain.Table) error
	Get(id int) (*domain.Table, error)
	List(restaurantID int) ([]domain.Table, error)
	QRCode(tableID int) ([]byte, error)
}

type TableRepository interface {
	CreateTable(table *domain.Table) error
	GetTable(id int) (*domain.Table, error)
	ListTables(restaurantID int) ([]domain.Table, error)
	ListTablesByFloor(restaurantID, floorNumber int) ([]domain.Table, error)
	SaveTableQRCode(tableID int, qr []byte) error
	GetTableQRCode(tableID int) ([]byte, error)
}

type FloorPlanRepository interface {
	GetFloorPlan(id int) (*domain.FloorPlan, error)
	UpdateFloorPlanSize(id, width, height int) error
	InsertPlacement(placement *domain.TablePlacement) error
	UpdatePlacementPosition(planID, tableID, x, y int) error
	UpdatePlacementSize(planID, tableID, width, height int) error
	DeletePlacement(planID, tableID int) error
	ListPlacements(restaurantID int) ([]domain.TablePlacement, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	UpdateOrderStatus(id int, status domain.OrderStatus) error
	CountOpenOrders(tableID int) (int, error)
	ListOpenOrders(restaurantID int) ([]domain.Order, error)
	ListOrdersCreatedSince(restaurantID int, since time.Time) ([]domain.Order, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type OccupancyCache interface {
	SetLabel(ctx context.Context, restaurantID, tableID int, label domain.OccupancyLabel) error
	Board(ctx context.Context, restaurantID int) (map[int]domain.OccupancyLabel, error)
	SetStats(ctx context.Context, restaurantID int, stats *domain.Stats) error
	GetStats(ctx context.Context, restaurantID int) (*domain.Stats, error)
}

type QRGenerator interface {
	Generate(tableID int) ([]byte, error)
}
