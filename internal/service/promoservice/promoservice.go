package promoservice

//go:generate mockgen -source=promoservice.go -destination=mocks.go -package=promoservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"teleshop/internal/domain"
	"teleshop/internal/service/pricing"
)

type PromoRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.Promocode, error)
	ClaimUse(ctx context.Context, code string, now time.Time) (int, bool, error)
	Save(ctx context.Context, promo *domain.Promocode) error
	FindAll(ctx context.Context) ([]domain.Promocode, error)
	Delete(ctx context.Context, code string) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateDiscount(ctx context.Context, userID int64, discountPercent int) error
}

type Service struct {
	promoRepo PromoRepo
	userRepo  UserRepo
}

func New(promoRepo PromoRepo, userRepo UserRepo) *Service {
	return &Service{
		promoRepo: promoRepo,
		userRepo:  userRepo,
	}
}

var (
	ErrPromoNotFound  = errors.New("promocode not found")
	ErrPromoExpired   = errors.New("promocode expired")
	ErrPromoExhausted = errors.New("promocode has no uses left")
	ErrPromoExists    = errors.New("promocode already exists")
	ErrInvalidMaxUses = errors.New("max uses must be positive")
	ErrUserNotFound   = errors.New("user not found")
)

// Redeem claims one use of the code and overwrites the user's discount with
// the code's percent. Last redeemed wins: a smaller discount redeemed after
// a larger one lowers the user's effective discount, matching the historical
// behavior of this shop.
func (s *Service) Redeem(ctx context.Context, userID int64, code string) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	discountPercent, claimed, err := s.promoRepo.ClaimUse(ctx, code, time.Now())
	if err != nil {
		return 0, err
	}
	if !claimed {
		promo, err := s.promoRepo.FindByCode(ctx, code)
		if err != nil {
			return 0, err
		}
		switch {
		case promo == nil:
			return 0, ErrPromoNotFound
		case promo.Expiration != nil && !promo.Expiration.After(time.Now()):
			return 0, ErrPromoExpired
		default:
			return 0, ErrPromoExhausted
		}
	}

	if err := s.userRepo.UpdateDiscount(ctx, userID, discountPercent); err != nil {
		return 0, err
	}

	zap.L().Info("promocode redeemed",
		zap.Int64("userID", userID),
		zap.String("code", code),
		zap.Int("discountPercent", discountPercent),
	)
	return discountPercent, nil
}

func (s *Service) Create(ctx context.Context, promo *domain.Promocode) error {
	if err := pricing.ValidatePercent(promo.DiscountPercent); err != nil {
		return err
	}
	if promo.MaxUses != nil && *promo.MaxUses <= 0 {
		return ErrInvalidMaxUses
	}

	existing, err := s.promoRepo.FindByCode(ctx, promo.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrPromoExists
	}

	if err := s.promoRepo.Save(ctx, promo); err != nil {
		zap.L().Error("can't create promocode", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Promocode, error) {
	return s.promoRepo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	deleted, err := s.promoRepo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPromoNotFound
	}
	return nil
}
