package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tableside/internal/domain"
)

// Fixed bill policy rates, in percent of the subtotal.
const (
	TaxRatePercent           = 10
	ServiceChargeRatePercent = 5
)

// statusSuccessor is the only legal next state for each non-terminal status.
// paid has no entry; nothing follows it.
var statusSuccessor = map[domain.OrderStatus]domain.OrderStatus{
	domain.StatusPlaced:       domain.StatusUnderProcess,
	domain.StatusUnderProcess: domain.StatusServed,
	domain.StatusServed:       domain.StatusCompleted,
	domain.StatusCompleted:    domain.StatusPaid,
}

// DeriveTableOccupancy projects an order's status (or its absence) into the
// table-display category. It is the single source of occupancy rules; callers
// render its output and never re-derive status mappings themselves.
func DeriveTableOccupancy(order *domain.Order) domain.OccupancyLabel {
	if order == nil {
		return domain.OccupancyVacant
	}
	switch order.Status {
	case domain.StatusPlaced:
		return domain.OccupancyNewOrder
	case domain.StatusUnderProcess:
		return domain.OccupancyPreparing
	case domain.StatusServed:
		return domain.OccupancyServed
	case domain.StatusCompleted:
		return domain.OccupancyAwaitingPayment
	default:
		// paid orders free the table; the record itself persists as history.
		return domain.OccupancyVacant
	}
}

// ComputeBill applies the tax and service-charge rates independently to the
// subtotal, rounding each half-up on the cents value.
func ComputeBill(lines []domain.OrderLine) domain.Bill {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Price * int64(line.Quantity)
	}
	tax := roundedPercent(subtotal, TaxRatePercent)
	service := roundedPercent(subtotal, ServiceChargeRatePercent)
	return domain.Bill{
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: service,
		Total:         subtotal + tax + service,
	}
}

// roundedPercent computes amount*percent/100 in integer cents, half-up.
func roundedPercent(amount int64, percent int64) int64 {
	return (amount*percent + 50) / 100
}

type OrderService struct {
	orders    OrderRepository
	publisher EventPublisher
}

func NewOrderService(orders OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{orders: orders, publisher: publisher}
}

func (s *OrderService) Create(ctx context.Context, tableID int, lines []domain.OrderLine) (*domain.Order, error) {
	if tableID <= 0 {
		return nil, &domain.ValidationError{Msg: "table id is required"}
	}
	if len(lines) == 0 {
		return nil, &domain.ValidationError{Msg: "order must contain at least one item"}
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, &domain.ValidationError{Msg: fmt.Sprintf("quantity for menu item %d must be positive", line.MenuItemID)}
		}
		if line.Price < 0 {
			return nil, &domain.ValidationError{Msg: fmt.Sprintf("price for menu item %d cannot be negative", line.MenuItemID)}
		}
	}

	open, err := s.orders.CountOpenOrders(tableID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open orders for table %d: %w", tableID, err)
	}
	if open > 0 {
		return nil, &domain.ConflictError{Msg: fmt.Sprintf("table %d already has an open order", tableID)}
	}

	var total int64
	for _, line := range lines {
		total += line.Price * int64(line.Quantity)
	}

	order := &domain.Order{
		TableID:     tableID,
		Status:      domain.StatusPlaced,
		Lines:       lines,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}
	if err := s.orders.InsertOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, domain.EventOrderPlaced, order)
	return order, nil
}

func (s *OrderService) Advance(ctx context.Context, orderID int, requested domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}

	next, ok := statusSuccessor[order.Status]
	if !ok || next != requested {
		return nil, &domain.InvalidTransitionError{From: order.Status, To: requested}
	}

	if err := s.orders.UpdateOrderStatus(orderID, requested); err != nil {
		return nil, fmt.Errorf("failed to update order %d status: %w", orderID, err)
	}
	order.Status = requested

	s.publish(ctx, domain.EventOrderStatus, order)
	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

func (s *OrderService) Bill(orderID int) (*domain.Bill, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	bill := ComputeBill(order.Lines)
	return &bill, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		TableID:      order.TableID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[tableside] failed to publish %s for order %d: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
