package domain

import "time"

// OrderStatus is the lifecycle state of an order. Transitions are strictly
// sequential; see service.Advance.
type OrderStatus string

const (
	StatusPlaced       OrderStatus = "placed"
	StatusUnderProcess OrderStatus = "under_process"
	StatusServed       OrderStatus = "served"
	StatusCompleted    OrderStatus = "completed"
	StatusPaid         OrderStatus = "paid"
)

// Terminal reports whether no further transitions are accepted.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid
}

// Known reports whether s is one of the five lifecycle states.
func (s OrderStatus) Known() bool {
	switch s {
	case StatusPlaced, StatusUnderProcess, StatusServed, StatusCompleted, StatusPaid:
		return true
	}
	return false
}

// OccupancyLabel is the table-display category projected from an order's
// status (or its absence).
type OccupancyLabel string

const (
	OccupancyVacant          OccupancyLabel = "vacant"
	OccupancyNewOrder        OccupancyLabel = "new_order"
	OccupancyPreparing       OccupancyLabel = "preparing"
	OccupancyServed          OccupancyLabel = "served"
	OccupancyAwaitingPayment OccupancyLabel = "awaiting_payment"
)

type TableShape string

const (
	ShapeRectangle TableShape = "rectangle"
	ShapeRound     TableShape = "round"
	ShapeBooth     TableShape = "booth"
)

func (s TableShape) Known() bool {
	switch s {
	case ShapeRectangle, ShapeRound, ShapeBooth:
		return true
	}
	return false
}

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type Table struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	TableNumber  int       `json:"table_number"`
	FloorNumber  int       `json:"floor_number"`
	CreatedAt    time.Time `json:"created_at"`
}

// TablePlacement is a table's position and size on a floor plan, in grid
// units.
type TablePlacement struct {
	TableID     int        `json:"table_id"`
	FloorPlanID int        `json:"floor_plan_id"`
	X           int        `json:"x_position"`
	Y           int        `json:"y_position"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Shape       TableShape `json:"shape"`
	Seats       int        `json:"seats"`
	IsActive    bool       `json:"is_active"`
}

type FloorPlan struct {
	ID           int              `json:"id"`
	RestaurantID int              `json:"restaurant_id"`
	Name         string           `json:"name"`
	FloorNumber  int              `json:"floor_number"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Placements   []TablePlacement `json:"placements"`
}

// OrderLine is an immutable snapshot of one menu item on an order. Price is
// the unit price in integer cents at the time the order was placed.
type OrderLine struct {
	MenuItemID  int    `json:"menu_item_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// Order. TotalAmount is the sum of line price*quantity in integer cents;
// tax and service charge are computed on top by the bill policy.
type Order struct {
	ID           int         `json:"id"`
	TableID      int         `json:"table_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	Lines        []OrderLine `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Bill is the payable breakdown for an order, all values in integer cents.
type Bill struct {
	Subtotal      int64 `json:"subtotal"`
	Tax           int64 `json:"tax"`
	ServiceCharge int64 `json:"service_charge"`
	Total         int64 `json:"total"`
}

// TableView is the read-only join of a table, its placement and its current
// non-terminal order. Recomputed on demand, never persisted.
type TableView struct {
	Table     Table           `json:"table"`
	Placement *TablePlacement `json:"placement,omitempty"`
	Order     *Order          `json:"order,omitempty"`
	Occupancy OccupancyLabel  `json:"occupancy"`
}

type Stats struct {
	ActiveOrders    int   `json:"active_orders"`
	CompletedOrders int   `json:"completed_orders"`
	OccupiedTables  int   `json:"occupied_tables"`
	TotalTables     int   `json:"total_tables"`
	TodaysRevenue   int64 `json:"todays_revenue"`
}

// OrderEvent is the Kafka message emitted on order creation and on every
// status change.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	TableID      int         `json:"table_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	TotalAmount  int64       `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}

const (
	EventOrderPlaced = "order_placed"
	EventOrderStatus = "order_status_changed"
)
