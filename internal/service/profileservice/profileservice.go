package profileservice

//go:generate mockgen -source=profileservice.go -destination=mocks.go -package=profileservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"teleshop/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	Create(ctx context.Context, userID int64, refID *int64) (*domain.User, error)
}

type ReferralRepo interface {
	EnsurePair(ctx context.Context, userID, refUserID int64) error
	StatsForReferrer(ctx context.Context, refUserID int64) (*domain.ReferralStats, error)
	FindByReferrer(ctx context.Context, refUserID int64) ([]domain.Referral, error)
}

type OrderRepo interface {
	CountCompletedByUserID(ctx context.Context, userID int64) (int, error)
}

type Service struct {
	userRepo     UserRepo
	referralRepo ReferralRepo
	orderRepo    OrderRepo
}

func New(userRepo UserRepo, referralRepo ReferralRepo, orderRepo OrderRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		orderRepo:    orderRepo,
	}
}

var ErrUserNotFound = errors.New("user not found")

type Profile struct {
	User           *domain.User
	PurchasesCount int
	ReferralsCount int
	Earnings       float64
}

// GetOrCreate registers the user on first contact. The referrer link is set
// exactly once; later contacts with a different ref id never change it.
// Self-referrals are dropped.
func (s *Service) GetOrCreate(ctx context.Context, userID int64, refID *int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if refID != nil && *refID == userID {
		refID = nil
	}

	user, err = s.userRepo.Create(ctx, userID, refID)
	if err != nil {
		return nil, err
	}

	if user.RefID != nil {
		if err := s.referralRepo.EnsurePair(ctx, user.ID, *user.RefID); err != nil {
			return nil, err
		}
		zap.L().Info("referral registered", zap.Int64("userID", user.ID), zap.Int64("refUserID", *user.RefID))
	}
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	purchases, err := s.orderRepo.CountCompletedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.referralRepo.StatsForReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		PurchasesCount: purchases,
		ReferralsCount: stats.Count,
		Earnings:       stats.Earnings,
	}, nil
}

func (s *Service) ListReferrals(ctx context.Context, userID int64) ([]domain.Referral, error) {
	return s.referralRepo.FindByReferrer(ctx, userID)
}
