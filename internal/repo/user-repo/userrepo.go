package userrepo

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

func (repo *Repository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, ref_id, balance, discount_percent, created_at
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.RefID, &user.Balance, &user.DiscountPercent, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Create registers a user on first contact. The referrer reference is set
// here once and never updated afterwards.
func (repo *Repository) Create(ctx context.Context, userID int64, refID *int64) (*domain.User, error) {
	var user domain.User
	query := `
		INSERT INTO users (id, ref_id)
		VALUES ($1, $2)
		RETURNING id, ref_id, balance, discount_percent, created_at
	`
	err := repo.db.QueryRow(ctx, query, userID, refID).Scan(&user.ID, &user.RefID, &user.Balance, &user.DiscountPercent, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateDiscount(ctx context.Context, userID int64, discountPercent int) error {
	query := `
		UPDATE users
		SET discount_percent = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, discountPercent, userID)
	if err != nil {
		zap.L().Error("can't update user discount", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) CreditBalance(ctx context.Context, userID int64, amount float64) error {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't credit user balance", zap.Error(err))
		return err
	}
	return nil
}
