package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

func TestTableService_Create(t *testing.T) {
	t.Run("creates and stores a fresh QR code", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		encoder := mocks.NewQRGenerator(t)
		svc := service.NewTableService(tables, encoder)

		tables.On("CreateTable", mock.AnythingOfType("*domain.Table")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*domain.Table).ID = 12
			}).Return(nil).Once()
		encoder.On("Generate", 12).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
		tables.On("SaveTableQRCode", 12, []byte{0x89, 'P', 'N', 'G'}).Return(nil).Once()

		table := &domain.Table{RestaurantID: 1, TableNumber: 5, FloorNumber: 2}

		assert.NoError(t, svc.Create(table))
		assert.Equal(t, 12, table.ID)
	})

	t.Run("missing restaurant is a validation error", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		svc := service.NewTableService(tables, nil)

		err := svc.Create(&domain.Table{TableNumber: 5})

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("table number must be positive", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		svc := service.NewTableService(tables, nil)

		err := svc.Create(&domain.Table{RestaurantID: 1})

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestTableService_QRCode(t *testing.T) {
	t.Run("returns the stored code", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		svc := service.NewTableService(tables, nil)

		tables.On("GetTableQRCode", 12).Return([]byte("stored"), nil).Once()

		qr, err := svc.QRCode(12)

		assert.NoError(t, err)
		assert.Equal(t, []byte("stored"), qr)
	})

	t.Run("regenerates and caches a missing code", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		encoder := mocks.NewQRGenerator(t)
		svc := service.NewTableService(tables, encoder)

		tables.On("GetTableQRCode", 12).Return(nil, nil).Once()
		encoder.On("Generate", 12).Return([]byte("fresh"), nil).Once()
		tables.On("SaveTableQRCode", 12, []byte("fresh")).Return(nil).Once()

		qr, err := svc.QRCode(12)

		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})
}

func TestDefaultQRGenerator(t *testing.T) {
	generator := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}

	qr, err := generator.Generate(12)

	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, qr[:4])
}
