package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"teleshop/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	invoiceID := int64(528412)
	createdAt := time.Now()

	saveQuery := regexp.QuoteMeta(`
        INSERT INTO orders (invoice_id, user_id, product_id, amount, currency, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `)

	tests := []struct {
		name      string
		order     *domain.Order
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves a settled line",
			order: &domain.Order{
				InvoiceID: &invoiceID, UserID: 42, ProductID: 7,
				Amount: 45, Currency: "USD", Status: domain.OrderStatusCompleted, CreatedAt: createdAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(saveQuery).
					WithArgs(&invoiceID, int64(42), 7, 45.0, "USD", domain.OrderStatusCompleted, createdAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(301))
			},
		},
		{
			name: "Saves a free delivery without an invoice",
			order: &domain.Order{
				InvoiceID: nil, UserID: 42, ProductID: 7,
				Amount: 0, Currency: "USD", Status: domain.OrderStatusCompleted, CreatedAt: createdAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(saveQuery).
					WithArgs((*int64)(nil), int64(42), 7, 0.0, "USD", domain.OrderStatusCompleted, createdAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(302))
			},
		},
		{
			name: "Database error",
			order: &domain.Order{
				InvoiceID: &invoiceID, UserID: 42, ProductID: 7,
				Amount: 45, Currency: "USD", Status: domain.OrderStatusCompleted, CreatedAt: createdAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(saveQuery).
					WithArgs(&invoiceID, int64(42), 7, 45.0, "USD", domain.OrderStatusCompleted, createdAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Save(context.Background(), tt.order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.order.ID)
			}
		})
	}
}

func TestRepository_FindByInvoiceID(t *testing.T) {
	repo, mock := NewMock(t)
	invoiceID := int64(528412)
	createdAt := time.Now()

	findQuery := regexp.QuoteMeta(`
        SELECT id, invoice_id, user_id, product_id, amount, currency, status, created_at
        FROM orders
        WHERE invoice_id = $1
        ORDER BY id
    `)

	t.Run("Returns all lines of a cart invoice", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "invoice_id", "user_id", "product_id", "amount", "currency", "status", "created_at"}).
			AddRow(301, &invoiceID, int64(42), 7, 10.0, "USD", domain.OrderStatusCompleted, createdAt).
			AddRow(302, &invoiceID, int64(42), 8, 20.0, "USD", domain.OrderStatusCompleted, createdAt)
		mock.ExpectQuery(findQuery).WithArgs(invoiceID).WillReturnRows(rows)

		orders, err := repo.FindByInvoiceID(context.Background(), invoiceID)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, 7, orders[0].ProductID)
		assert.InDelta(t, 20.0, orders[1].Amount, 1e-9)
	})

	t.Run("No orders recorded yet", func(t *testing.T) {
		mock.ExpectQuery(findQuery).WithArgs(invoiceID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "invoice_id", "user_id", "product_id", "amount", "currency", "status", "created_at"}))

		orders, err := repo.FindByInvoiceID(context.Background(), invoiceID)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(findQuery).WithArgs(invoiceID).WillReturnError(errors.New("database error"))

		orders, err := repo.FindByInvoiceID(context.Background(), invoiceID)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	invoiceID := int64(528412)
	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "invoice_id", "user_id", "product_id", "amount", "currency", "status", "created_at"}).
		AddRow(301, &invoiceID, int64(42), 7, 45.0, "USD", domain.OrderStatusCompleted, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, invoice_id, user_id, product_id, amount, currency, status, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	orders, err := repo.FindOrdersByUserID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(42), orders[0].UserID)
}

func TestRepository_CountCompletedByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	countQuery := regexp.QuoteMeta(`
        SELECT COUNT(*)
        FROM orders
        WHERE user_id = $1 AND status = $2
    `)

	t.Run("Counts purchases", func(t *testing.T) {
		mock.ExpectQuery(countQuery).
			WithArgs(int64(42), domain.OrderStatusCompleted).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountCompletedByUserID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(countQuery).
			WithArgs(int64(42), domain.OrderStatusCompleted).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountCompletedByUserID(context.Background(), 42)
		assert.Error(t, err)
		assert.Zero(t, count)
	})
}
