package tests

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"tableside/internal/domain"
	"tableside/internal/storage"
)

func newDBMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() {
		assert.NoError(t, dbMock.ExpectationsWereMet())
		db.Close()
	})
	return db, dbMock
}

func TestOrderRepository_InsertOrder(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	created := time.Now()
	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(2, domain.StatusPlaced, int64(2800)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "created_at"}).AddRow(40, 1, created))
	dbMock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(40, 1, "Margherita", "", 2, int64(1250)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(40, 4, "Espresso", "double shot", 1, int64(300)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	dbMock.ExpectCommit()

	order := &domain.Order{
		TableID:     2,
		Status:      domain.StatusPlaced,
		TotalAmount: 2800,
		Lines: []domain.OrderLine{
			{MenuItemID: 1, Name: "Margherita", Quantity: 2, Price: 1250},
			{MenuItemID: 4, Name: "Espresso", Description: "double shot", Quantity: 1, Price: 300},
		},
	}

	assert.NoError(t, repo.InsertOrder(order))
	assert.Equal(t, 40, order.ID)
	assert.Equal(t, 1, order.RestaurantID)
}

func TestOrderRepository_InsertOrder_UnknownTable(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	// The INSERT ... SELECT matches no table row, so RETURNING yields nothing
	// and the transaction rolls back.
	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(99, domain.StatusPlaced, int64(500)).
		WillReturnError(sql.ErrNoRows)
	dbMock.ExpectRollback()

	order := &domain.Order{
		TableID:     99,
		Status:      domain.StatusPlaced,
		TotalAmount: 500,
		Lines:       []domain.OrderLine{{MenuItemID: 1, Name: "Margherita", Quantity: 1, Price: 500}},
	}

	assert.ErrorIs(t, repo.InsertOrder(order), sql.ErrNoRows)
}

func TestOrderRepository_GetOrder(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	created := time.Now()
	dbMock.ExpectQuery(`SELECT id, table_id, restaurant_id, status, total_amount, created_at`).
		WithArgs(40).
		WillReturnRows(sqlmock.NewRows([]string{"id", "table_id", "restaurant_id", "status", "total_amount", "created_at"}).
			AddRow(40, 2, 1, "served", int64(2800), created))
	dbMock.ExpectQuery(`SELECT menu_item_id, name, COALESCE`).
		WithArgs(40).
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_id", "name", "description", "quantity", "price"}).
			AddRow(1, "Margherita", "", 2, int64(1250)).
			AddRow(4, "Espresso", "double shot", 1, int64(300)))

	order, err := repo.GetOrder(40)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusServed, order.Status)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, "double shot", order.Lines[1].Description)
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	dbMock.ExpectExec(`UPDATE orders SET status`).
		WithArgs(domain.StatusPaid, 40).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateOrderStatus(40, domain.StatusPaid))
}

func TestOrderRepository_UpdateOrderStatus_NotFound(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	dbMock.ExpectExec(`UPDATE orders SET status`).
		WithArgs(domain.StatusPaid, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateOrderStatus(99, domain.StatusPaid), sql.ErrNoRows)
}

func TestOrderRepository_CountOpenOrders(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewOrderRepository(db)

	dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountOpenOrders(2)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFloorPlanRepository_GetFloorPlan(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewFloorPlanRepository(db)

	dbMock.ExpectQuery(`SELECT id, restaurant_id, name, floor_number, width, height`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "floor_number", "width", "height"}).
			AddRow(1, 1, "Main floor", 1, 20, 20))
	dbMock.ExpectQuery(`SELECT table_id, floor_plan_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"table_id", "floor_plan_id", "x_position", "y_position", "width", "height", "shape", "seats", "is_active"}).
			AddRow(7, 1, 10, 10, 4, 4, "rectangle", 4, true).
			AddRow(8, 1, 2, 2, 4, 4, "round", 2, false))

	plan, err := repo.GetFloorPlan(1)

	assert.NoError(t, err)
	assert.Equal(t, 20, plan.Width)
	assert.Len(t, plan.Placements, 2)
	assert.True(t, plan.Placements[0].IsActive)
	assert.Equal(t, domain.ShapeRound, plan.Placements[1].Shape)
}

func TestFloorPlanRepository_UpdatePlacementPosition_NotFound(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewFloorPlanRepository(db)

	dbMock.ExpectExec(`UPDATE table_placements`).
		WithArgs(6, 4, 1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdatePlacementPosition(1, 99, 6, 4), sql.ErrNoRows)
}

func TestTableRepository_CreateTable(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewTableRepository(db)

	created := time.Now()
	dbMock.ExpectQuery(`INSERT INTO tables`).
		WithArgs(1, 5, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, created))

	table := &domain.Table{RestaurantID: 1, TableNumber: 5, FloorNumber: 2}

	assert.NoError(t, repo.CreateTable(table))
	assert.Equal(t, 12, table.ID)
	assert.Equal(t, created, table.CreatedAt)
}

func TestTableRepository_ListTablesByFloor(t *testing.T) {
	db, dbMock := newDBMock(t)
	repo := storage.NewTableRepository(db)

	created := time.Now()
	dbMock.ExpectQuery(`SELECT id, restaurant_id, table_number, floor_number, created_at`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number", "floor_number", "created_at"}).
			AddRow(3, 1, 3, 2, created))

	tables, err := repo.ListTablesByFloor(1, 2)

	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, 3, tables[0].TableNumber)
}
