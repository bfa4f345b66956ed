package service

import (
	"fmt"

	"tableside/internal/domain"
)

type TableService struct {
	tables    TableRepository
	qrEncoder QRGenerator
}

func NewTableService(tables TableRepository, qr QRGenerator) *TableService {
	return &TableService{tables: tables, qrEncoder: qr}
}

func (s *TableService) Create(table *domain.Table) error {
	if table.RestaurantID <= 0 {
		return &domain.ValidationError{Msg: "restaurant id is required"}
	}
	if table.TableNumber <= 0 {
		return &domain.ValidationError{Msg: "table number must be positive"}
	}
	if err := s.tables.CreateTable(table); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(table.ID); err == nil {
			_ = s.tables.SaveTableQRCode(table.ID, qr)
		}
	}
	return nil
}

func (s *TableService) Get(id int) (*domain.Table, error) {
	return s.tables.GetTable(id)
}

func (s *TableService) List(restaurantID int) ([]domain.Table, error) {
	return s.tables.ListTables(restaurantID)
}

// QRCode returns the stored per-table code, regenerating and caching it when
// missing.
func (s *TableService) QRCode(tableID int) ([]byte, error) {
	qr, err := s.tables.GetTableQRCode(tableID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(tableID); err == nil {
			_ = s.tables.SaveTableQRCode(tableID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ TableServiceInterface = (*TableService)(nil)
