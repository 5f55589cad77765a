package invoicerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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
	productID := 7

	tests := []struct {
		name      string
		invoice   *domain.Invoice
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves invoice",
			invoice: &domain.Invoice{
				InvoiceID: 528412, UserID: 42, ProductID: &productID,
				Amount: 45.0, Payload: "p1", Status: domain.InvoiceStatusPending,
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO invoices (invoice_id, user_id, product_id, amount, payload, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `)).
					WithArgs(int64(528412), int64(42), &productID, 45.0, "p1", domain.InvoiceStatusPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			invoice: &domain.Invoice{
				InvoiceID: 528412, UserID: 42, ProductID: &productID,
				Amount: 45.0, Payload: "p1", Status: domain.InvoiceStatusPending,
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO invoices (invoice_id, user_id, product_id, amount, payload, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `)).
					WithArgs(int64(528412), int64(42), &productID, 45.0, "p1", domain.InvoiceStatusPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Save(context.Background(), tt.invoice)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	productID := 7
	createdAt := time.Now()

	tests := []struct {
		name      string
		invoiceID int64
		mockSetup func()
		expectErr bool
		result    *domain.Invoice
	}{
		{
			name:      "Found",
			invoiceID: 528412,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"invoice_id", "user_id", "product_id", "amount", "payload", "status", "created_at", "settled_at"}).
					AddRow(int64(528412), int64(42), &productID, 45.0, "p1", domain.InvoiceStatusPending, createdAt, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE invoice_id = $1
    `)).
					WithArgs(int64(528412)).
					WillReturnRows(rows)
			},
			result: &domain.Invoice{
				InvoiceID: 528412, UserID: 42, ProductID: &productID,
				Amount: 45.0, Payload: "p1", Status: domain.InvoiceStatusPending, CreatedAt: createdAt,
			},
		},
		{
			name:      "Not found returns nil",
			invoiceID: 999,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE invoice_id = $1
    `)).
					WithArgs(int64(999)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			invoiceID: 528412,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE invoice_id = $1
    `)).
					WithArgs(int64(528412)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByID(context.Background(), tt.invoiceID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ClaimSettlement(t *testing.T) {
	repo, mock := NewMock(t)

	claimQuery := regexp.QuoteMeta(`
        UPDATE invoices
        SET status = $1, settled_at = now()
        WHERE invoice_id = $2 AND status = $3
    `)

	tests := []struct {
		name      string
		mockSetup func()
		claimed   bool
		expectErr bool
	}{
		{
			name: "First claim wins",
			mockSetup: func() {
				mock.ExpectExec(claimQuery).
					WithArgs(domain.InvoiceStatusSettled, int64(528412), domain.InvoiceStatusPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			claimed: true,
		},
		{
			name: "Replay observes an already settled invoice",
			mockSetup: func() {
				mock.ExpectExec(claimQuery).
					WithArgs(domain.InvoiceStatusSettled, int64(528412), domain.InvoiceStatusPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			claimed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(claimQuery).
					WithArgs(domain.InvoiceStatusSettled, int64(528412), domain.InvoiceStatusPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			claimed, err := repo.ClaimSettlement(context.Background(), 528412)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.claimed, claimed)
		})
	}
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"invoice_id", "user_id", "product_id", "amount", "payload", "status", "created_at", "settled_at"}).
		AddRow(int64(600), int64(42), (*int)(nil), 30.0, "p2", domain.InvoiceStatusPending, createdAt, (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `)).
		WithArgs(domain.InvoiceStatusPending, 1000).
		WillReturnRows(rows)

	invoices, err := repo.FindPending(context.Background(), 1000)
	assert.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Equal(t, int64(600), invoices[0].InvoiceID)
	assert.Nil(t, invoices[0].ProductID)
}
