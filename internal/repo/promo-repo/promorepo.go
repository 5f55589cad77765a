package promorepo

import (
	"context"
	"time"

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

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Promocode, error) {
	query := `
        SELECT code, discount_percent, expiration, max_uses, uses_count
        FROM promocodes
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)

	var promo domain.Promocode
	err := row.Scan(&promo.Code, &promo.DiscountPercent, &promo.Expiration, &promo.MaxUses, &promo.UsesCount)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find promocode", zap.Error(err))
		return nil, err
	}
	return &promo, nil
}

// ClaimUse increments uses_count and returns the discount in one conditional
// statement, so the cap cannot be raced past by concurrent redemptions.
// Returns (0, false, nil) when the code is missing, expired or exhausted.
func (r *Repository) ClaimUse(ctx context.Context, code string, now time.Time) (int, bool, error) {
	query := `
        UPDATE promocodes
        SET uses_count = uses_count + 1
        WHERE code = $1
          AND (max_uses IS NULL OR uses_count < max_uses)
          AND (expiration IS NULL OR expiration > $2)
        RETURNING discount_percent
    `
	var discountPercent int
	err := r.db.QueryRow(ctx, query, code, now).Scan(&discountPercent)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		zap.L().Error("can't claim promocode use", zap.Error(err))
		return 0, false, err
	}
	return discountPercent, true, nil
}

func (r *Repository) Save(ctx context.Context, promo *domain.Promocode) error {
	query := `
        INSERT INTO promocodes (code, discount_percent, expiration, max_uses)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, promo.Code, promo.DiscountPercent, promo.Expiration, promo.MaxUses)
	if err != nil {
		zap.L().Error("can't save promocode", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Promocode, error) {
	query := `
        SELECT code, discount_percent, expiration, max_uses, uses_count
        FROM promocodes
        ORDER BY code
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get promocodes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promos []domain.Promocode
	for rows.Next() {
		var promo domain.Promocode
		err := rows.Scan(&promo.Code, &promo.DiscountPercent, &promo.Expiration, &promo.MaxUses, &promo.UsesCount)
		if err != nil {
			zap.L().Error("can't scan promocode row", zap.Error(err))
			return nil, err
		}
		promos = append(promos, promo)
	}
	return promos, nil
}

func (r *Repository) Delete(ctx context.Context, code string) (bool, error) {
	query := `
        DELETE FROM promocodes
        WHERE code = $1
    `
	tag, err := r.db.Exec(ctx, query, code)
	if err != nil {
		zap.L().Error("can't delete promocode", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
