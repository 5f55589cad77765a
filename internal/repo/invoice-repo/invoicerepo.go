package invoicerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"teleshop/internal/domain"
	"teleshop/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save persists the local row for an invoice the gateway already accepted.
// The amount is fixed here and never recomputed.
func (r *Repository) Save(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        INSERT INTO invoices (invoice_id, user_id, product_id, amount, payload, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, invoice.InvoiceID, invoice.UserID, invoice.ProductID, invoice.Amount, invoice.Payload, invoice.Status)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := `
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE invoice_id = $1
    `
	row := r.db.QueryRow(ctx, query, invoiceID)

	var invoice domain.Invoice
	err := row.Scan(&invoice.InvoiceID, &invoice.UserID, &invoice.ProductID, &invoice.Amount, &invoice.Payload, &invoice.Status, &invoice.CreatedAt, &invoice.SettledAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

// ClaimSettlement flips the invoice to settled only while it is still
// pending. The conditional update is the re-entrancy guard: exactly one
// caller observes true, every replay observes false.
func (r *Repository) ClaimSettlement(ctx context.Context, invoiceID int64) (bool, error) {
	query := `
        UPDATE invoices
        SET status = $1, settled_at = now()
        WHERE invoice_id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.InvoiceStatusSettled, invoiceID, domain.InvoiceStatusPending)
	if err != nil {
		zap.L().Error("can't claim invoice settlement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Invoice, error) {
	query := `
        SELECT invoice_id, user_id, product_id, amount, payload, status, created_at, settled_at
        FROM invoices
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.InvoiceStatusPending, int(limit))
	if err != nil {
		zap.L().Error("can't get pending invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(&invoice.InvoiceID, &invoice.UserID, &invoice.ProductID, &invoice.Amount, &invoice.Payload, &invoice.Status, &invoice.CreatedAt, &invoice.SettledAt)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}
