package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tableside/internal/domain"
)

// AggregatorService joins tables, their placements and their current
// non-terminal order into read-only views. It writes nothing of its own;
// the Redis stats entry is a cache of a computed value, not owned state.
type AggregatorService struct {
	tables TableRepository
	plans  FloorPlanRepository
	orders OrderRepository
	cache  OccupancyCache
}

func NewAggregatorService(tables TableRepository, plans FloorPlanRepository, orders OrderRepository, cache OccupancyCache) *AggregatorService {
	return &AggregatorService{
		tables: tables,
		plans:  plans,
		orders: orders,
		cache:  cache,
	}
}

func (s *AggregatorService) ListTablesWithOrders(restaurantID int, floorNumber *int) ([]domain.TableView, error) {
	var tables []domain.Table
	var err error
	if floorNumber != nil {
		tables, err = s.tables.ListTablesByFloor(restaurantID, *floorNumber)
	} else {
		tables, err = s.tables.ListTables(restaurantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tables for restaurant %d: %w", restaurantID, err)
	}

	placements, err := s.plans.ListPlacements(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list placements for restaurant %d: %w", restaurantID, err)
	}
	placementByTable := make(map[int]domain.TablePlacement, len(placements))
	for _, placement := range placements {
		placementByTable[placement.TableID] = placement
	}

	orderByTable, err := s.openOrdersByTable(restaurantID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.TableView, 0, len(tables))
	for _, table := range tables {
		view := domain.TableView{Table: table}
		if placement, ok := placementByTable[table.ID]; ok {
			view.Placement = &placement
		}
		if order, ok := orderByTable[table.ID]; ok {
			view.Order = order
		}
		view.Occupancy = DeriveTableOccupancy(view.Order)
		views = append(views, view)
	}
	return views, nil
}

func (s *AggregatorService) ComputeStats(ctx context.Context, restaurantID int) (*domain.Stats, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStats(ctx, restaurantID); err == nil && cached != nil {
			return cached, nil
		}
	}

	tables, err := s.tables.ListTables(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables for restaurant %d: %w", restaurantID, err)
	}

	orderByTable, err := s.openOrdersByTable(restaurantID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{TotalTables: len(tables)}
	for _, order := range orderByTable {
		switch order.Status {
		case domain.StatusPlaced, domain.StatusUnderProcess, domain.StatusServed:
			stats.ActiveOrders++
		}
	}
	for _, table := range tables {
		if DeriveTableOccupancy(orderByTable[table.ID]) != domain.OccupancyVacant {
			stats.OccupiedTables++
		}
	}

	todays, err := s.orders.ListOrdersCreatedSince(restaurantID, startOfToday())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's orders for restaurant %d: %w", restaurantID, err)
	}
	for _, order := range todays {
		switch order.Status {
		case domain.StatusCompleted:
			stats.CompletedOrders++
		case domain.StatusPaid:
			stats.CompletedOrders++
			stats.TodaysRevenue += order.TotalAmount
		}
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, restaurantID, stats); err != nil {
			log.Printf("[tableside] failed to cache stats for restaurant %d: %v", restaurantID, err)
		}
	}
	return stats, nil
}

// openOrdersByTable loads all non-terminal orders and indexes them by table.
// Two open orders on one table contradict the data model and surface as an
// InvariantViolationError rather than a silent pick-first.
func (s *AggregatorService) openOrdersByTable(restaurantID int) (map[int]*domain.Order, error) {
	open, err := s.orders.ListOpenOrders(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open orders for restaurant %d: %w", restaurantID, err)
	}
	byTable := make(map[int]*domain.Order, len(open))
	for i := range open {
		order := &open[i]
		if _, exists := byTable[order.TableID]; exists {
			return nil, &domain.InvariantViolationError{
				Msg: fmt.Sprintf("table %d has more than one open order", order.TableID),
			}
		}
		byTable[order.TableID] = order
	}
	return byTable, nil
}

// startOfToday is local midnight; the stats "today" boundary.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

var _ AggregatorServiceInterface = (*AggregatorService)(nil)
