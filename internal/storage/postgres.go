package storage

import (
	"database/sql"
	"fmt"
	"time"

	"tableside/internal/domain"
)

// EnsureSchema creates the tables the service needs. Money columns are
// BIGINT cents, never floating point.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			table_number INTEGER NOT NULL,
			floor_number INTEGER NOT NULL DEFAULT 1,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (restaurant_id, floor_number, table_number)
		)`,
		`CREATE TABLE IF NOT EXISTS floor_plans (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			floor_number INTEGER NOT NULL DEFAULT 1,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS table_placements (
			table_id INTEGER NOT NULL REFERENCES tables(id),
			floor_plan_id INTEGER NOT NULL REFERENCES floor_plans(id),
			x_position INTEGER NOT NULL,
			y_position INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			shape TEXT NOT NULL DEFAULT 'rectangle',
			seats INTEGER NOT NULL DEFAULT 2,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			PRIMARY KEY (floor_plan_id, table_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_id INTEGER NOT NULL REFERENCES tables(id),
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			status TEXT NOT NULL DEFAULT 'placed',
			total_amount BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			menu_item_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			quantity INTEGER NOT NULL,
			price BIGINT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

type TableRepository struct {
	DB *sql.DB
}

func NewTableRepository(db *sql.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) CreateTable(table *domain.Table) error {
	return r.DB.QueryRow(`
		INSERT INTO tables (restaurant_id, table_number, floor_number)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, table.RestaurantID, table.TableNumber, table.FloorNumber).
		Scan(&table.ID, &table.CreatedAt)
}

func (r *TableRepository) GetTable(id int) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, table_number, floor_number, created_at
		FROM tables
		WHERE id = $1
	`, id).Scan(&table.ID, &table.RestaurantID, &table.TableNumber, &table.FloorNumber, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) ListTables(restaurantID int) ([]domain.Table, error) {
	return r.listTables(`
		SELECT id, restaurant_id, table_number, floor_number, created_at
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY floor_number, table_number
	`, restaurantID)
}

func (r *TableRepository) ListTablesByFloor(restaurantID, floorNumber int) ([]domain.Table, error) {
	return r.listTables(`
		SELECT id, restaurant_id, table_number, floor_number, created_at
		FROM tables
		WHERE restaurant_id = $1 AND floor_number = $2
		ORDER BY table_number
	`, restaurantID, floorNumber)
}

func (r *TableRepository) listTables(query string, args ...interface{}) ([]domain.Table, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.TableNumber, &table.FloorNumber, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (r *TableRepository) SaveTableQRCode(tableID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE tables SET qr_code = $1 WHERE id = $2`, qr, tableID)
	return err
}

func (r *TableRepository) GetTableQRCode(tableID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM tables WHERE id = $1`, tableID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}

type FloorPlanRepository struct {
	DB *sql.DB
}

func NewFloorPlanRepository(db *sql.DB) *FloorPlanRepository {
	return &FloorPlanRepository{DB: db}
}

func (r *FloorPlanRepository) GetFloorPlan(id int) (*domain.FloorPlan, error) {
	var plan domain.FloorPlan
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, floor_number, width, height
		FROM floor_plans
		WHERE id = $1
	`, id).Scan(&plan.ID, &plan.RestaurantID, &plan.Name, &plan.FloorNumber, &plan.Width, &plan.Height)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT table_id, floor_plan_id, x_position, y_position, width, height, shape, seats, is_active
		FROM table_placements
		WHERE floor_plan_id = $1
		ORDER BY table_id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan.Placements = []domain.TablePlacement{}
	for rows.Next() {
		var placement domain.TablePlacement
		if err := rows.Scan(&placement.TableID, &placement.FloorPlanID, &placement.X, &placement.Y,
			&placement.Width, &placement.Height, &placement.Shape, &placement.Seats, &placement.IsActive); err != nil {
			continue
		}
		plan.Placements = append(plan.Placements, placement)
	}
	return &plan, rows.Err()
}

func (r *FloorPlanRepository) UpdateFloorPlanSize(id, width, height int) error {
	result, err := r.DB.Exec(`UPDATE floor_plans SET width = $1, height = $2 WHERE id = $3`, width, height, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FloorPlanRepository) InsertPlacement(placement *domain.TablePlacement) error {
	_, err := r.DB.Exec(`
		INSERT INTO table_placements (table_id, floor_plan_id, x_position, y_position, width, height, shape, seats, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, placement.TableID, placement.FloorPlanID, placement.X, placement.Y,
		placement.Width, placement.Height, placement.Shape, placement.Seats, placement.IsActive)
	return err
}

func (r *FloorPlanRepository) UpdatePlacementPosition(planID, tableID, x, y int) error {
	result, err := r.DB.Exec(`
		UPDATE table_placements
		SET x_position = $1, y_position = $2
		WHERE floor_plan_id = $3 AND table_id = $4
	`, x, y, planID, tableID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FloorPlanRepository) UpdatePlacementSize(planID, tableID, width, height int) error {
	result, err := r.DB.Exec(`
		UPDATE table_placements
		SET width = $1, height = $2
		WHERE floor_plan_id = $3 AND table_id = $4
	`, width, height, planID, tableID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FloorPlanRepository) DeletePlacement(planID, tableID int) error {
	_, err := r.DB.Exec(`
		DELETE FROM table_placements
		WHERE floor_plan_id = $1 AND table_id = $2
	`, planID, tableID)
	return err
}

func (r *FloorPlanRepository) ListPlacements(restaurantID int) ([]domain.TablePlacement, error) {
	rows, err := r.DB.Query(`
		SELECT tp.table_id, tp.floor_plan_id, tp.x_position, tp.y_position, tp.width, tp.height, tp.shape, tp.seats, tp.is_active
		FROM table_placements tp
		JOIN floor_plans fp ON tp.floor_plan_id = fp.id
		WHERE fp.restaurant_id = $1 AND tp.is_active
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	placements := []domain.TablePlacement{}
	for rows.Next() {
		var placement domain.TablePlacement
		if err := rows.Scan(&placement.TableID, &placement.FloorPlanID, &placement.X, &placement.Y,
			&placement.Width, &placement.Height, &placement.Shape, &placement.Seats, &placement.IsActive); err != nil {
			continue
		}
		placements = append(placements, placement)
	}
	return placements, rows.Err()
}

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) InsertOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (table_id, restaurant_id, status, total_amount)
		SELECT id, restaurant_id, $2, $3 FROM tables WHERE id = $1
		RETURNING id, restaurant_id, created_at
	`, order.TableID, order.Status, order.TotalAmount).
		Scan(&order.ID, &order.RestaurantID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, name, description, quantity, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, line.MenuItemID, line.Name, line.Description, line.Quantity, line.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, table_id, restaurant_id, status, total_amount, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.TableID, &order.RestaurantID, &order.Status, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, COALESCE(description, ''), quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Lines = []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.Description, &line.Quantity, &line.Price); err != nil {
			continue
		}
		order.Lines = append(order.Lines, line)
	}
	return &order, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(id int, status domain.OrderStatus) error {
	result, err := r.DB.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OrderRepository) CountOpenOrders(tableID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM orders
		WHERE table_id = $1 AND status <> 'paid'
	`, tableID).Scan(&count)
	return count, err
}

func (r *OrderRepository) ListOpenOrders(restaurantID int) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT id, table_id, restaurant_id, status, total_amount, created_at
		FROM orders
		WHERE restaurant_id = $1 AND status <> 'paid'
		ORDER BY created_at
	`, restaurantID)
}

func (r *OrderRepository) ListOrdersCreatedSince(restaurantID int, since time.Time) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT id, table_id, restaurant_id, status, total_amount, created_at
		FROM orders
		WHERE restaurant_id = $1 AND created_at >= $2
		ORDER BY created_at
	`, restaurantID, since)
}

func (r *OrderRepository) listOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.TableID, &order.RestaurantID, &order.Status, &order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
