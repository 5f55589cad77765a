package referralrepo

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

// EnsurePair records the (referred, referrer) pairing once, at first contact.
func (r *Repository) EnsurePair(ctx context.Context, userID, refUserID int64) error {
	query := `
        INSERT INTO referrals (user_id, ref_user_id, earnings)
        VALUES ($1, $2, 0)
        ON CONFLICT (user_id, ref_user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID, refUserID)
	if err != nil {
		zap.L().Error("can't save referral pair", zap.Error(err))
		return err
	}
	return nil
}

// CreditEarnings accumulates the pairing's running total.
func (r *Repository) CreditEarnings(ctx context.Context, userID, refUserID int64, amount float64) error {
	query := `
        INSERT INTO referrals (user_id, ref_user_id, earnings)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, ref_user_id) DO UPDATE SET earnings = referrals.earnings + EXCLUDED.earnings
    `
	_, err := r.db.Exec(ctx, query, userID, refUserID, amount)
	if err != nil {
		zap.L().Error("can't credit referral earnings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) StatsForReferrer(ctx context.Context, refUserID int64) (*domain.ReferralStats, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(earnings), 0)
        FROM referrals
        WHERE ref_user_id = $1
    `
	var stats domain.ReferralStats
	err := r.db.QueryRow(ctx, query, refUserID).Scan(&stats.Count, &stats.Earnings)
	if err != nil {
		zap.L().Error("can't get referral stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) FindByReferrer(ctx context.Context, refUserID int64) ([]domain.Referral, error) {
	query := `
        SELECT user_id, ref_user_id, earnings
        FROM referrals
        WHERE ref_user_id = $1
        ORDER BY user_id
    `
	rows, err := r.db.Query(ctx, query, refUserID)
	if err != nil {
		zap.L().Error("can't get referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var referral domain.Referral
		err := rows.Scan(&referral.UserID, &referral.RefUserID, &referral.Earnings)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, nil
}
