package cartrepo

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

// Add keeps presence semantics: re-adding a product replaces the single
// entry instead of incrementing a counter.
func (r *Repository) Add(ctx context.Context, userID int64, productID int) error {
	query := `
        INSERT INTO cart (user_id, product_id, quantity)
        VALUES ($1, $2, 1)
        ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = 1
    `
	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't add cart entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID int64, productID int) error {
	query := `
        DELETE FROM cart
        WHERE user_id = $1 AND product_id = $2
    `
	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't remove cart entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, userID int64) error {
	query := `
        DELETE FROM cart
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}

// List joins cart rows with the live product record, so prices reflect the
// catalog at read time, not at add time.
func (r *Repository) List(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	query := `
        SELECT p.id, p.name, p.price, p.delivery_payload
        FROM cart c
        JOIN products p ON p.id = c.product_id
        WHERE c.user_id = $1
        ORDER BY p.id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		err := rows.Scan(&line.ProductID, &line.Name, &line.Price, &line.DeliveryPayload)
		if err != nil {
			zap.L().Error("can't scan cart row", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
