package orderrepo

import (
	"context"

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

// Save appends one fulfilled purchase line. Rows are never updated or
// deleted outside of product-deletion cleanup.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (invoice_id, user_id, product_id, amount, currency, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, order.InvoiceID, order.UserID, order.ProductID, order.Amount, order.Currency, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.Order, error) {
	query := `
        SELECT id, invoice_id, user_id, product_id, amount, currency, status, created_at
        FROM orders
        WHERE invoice_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		zap.L().Error("can't get orders by invoice", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.InvoiceID, &order.UserID, &order.ProductID, &order.Amount, &order.Currency, &order.Status, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
        SELECT id, invoice_id, user_id, product_id, amount, currency, status, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.InvoiceID, &order.UserID, &order.ProductID, &order.Amount, &order.Currency, &order.Status, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) CountCompletedByUserID(ctx context.Context, userID int64) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM orders
        WHERE user_id = $1 AND status = $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, domain.OrderStatusCompleted).Scan(&count)
	if err != nil {
		zap.L().Error("can't count completed orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}
