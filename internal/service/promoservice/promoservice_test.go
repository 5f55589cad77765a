package promoservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/domain"
	"teleshop/internal/service/pricing"
)

func NewMock(t *testing.T) (*Service, *MockPromoRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	promoRepo := NewMockPromoRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(promoRepo, userRepo)
	defer ctrl.Finish()
	return service, promoRepo, userRepo
}

func TestRedeem(t *testing.T) {
	service, promoRepo, userRepo := NewMock(t)
	expired := time.Now().Add(-time.Hour)
	maxUses := 5

	tests := []struct {
		name             string
		userID           int64
		code             string
		prepareMock      func()
		expectedDiscount int
		expectedError    error
	}{
		{
			name:   "Successful redeem overwrites discount",
			userID: 42,
			code:   "SPRING25",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42, DiscountPercent: 50}, nil)
				promoRepo.EXPECT().ClaimUse(gomock.Any(), "SPRING25", gomock.Any()).Return(25, true, nil)
				userRepo.EXPECT().UpdateDiscount(gomock.Any(), int64(42), 25).Return(nil)
			},
			expectedDiscount: 25,
			expectedError:    nil,
		},
		{
			name:   "Unknown user",
			userID: 99,
			code:   "SPRING25",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Unknown code",
			userID: 42,
			code:   "NOPE",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
				promoRepo.EXPECT().ClaimUse(gomock.Any(), "NOPE", gomock.Any()).Return(0, false, nil)
				promoRepo.EXPECT().FindByCode(gomock.Any(), "NOPE").Return(nil, nil)
			},
			expectedError: ErrPromoNotFound,
		},
		{
			name:   "Expired code",
			userID: 42,
			code:   "OLD",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
				promoRepo.EXPECT().ClaimUse(gomock.Any(), "OLD", gomock.Any()).Return(0, false, nil)
				promoRepo.EXPECT().FindByCode(gomock.Any(), "OLD").Return(&domain.Promocode{
					Code: "OLD", DiscountPercent: 25, Expiration: &expired,
				}, nil)
			},
			expectedError: ErrPromoExpired,
		},
		{
			name:   "Exhausted code",
			userID: 42,
			code:   "FULL",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
				promoRepo.EXPECT().ClaimUse(gomock.Any(), "FULL", gomock.Any()).Return(0, false, nil)
				promoRepo.EXPECT().FindByCode(gomock.Any(), "FULL").Return(&domain.Promocode{
					Code: "FULL", DiscountPercent: 25, MaxUses: &maxUses, UsesCount: 5,
				}, nil)
			},
			expectedError: ErrPromoExhausted,
		},
		{
			name:   "Claim error",
			userID: 42,
			code:   "SPRING25",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
				promoRepo.EXPECT().ClaimUse(gomock.Any(), "SPRING25", gomock.Any()).Return(0, false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			discount, err := service.Redeem(context.Background(), tt.userID, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDiscount, discount)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	service, promoRepo, _ := NewMock(t)
	zeroUses := 0

	tests := []struct {
		name          string
		promo         *domain.Promocode
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful creation",
			promo: &domain.Promocode{Code: "SPRING25", DiscountPercent: 25},
			prepareMock: func() {
				promoRepo.EXPECT().FindByCode(gomock.Any(), "SPRING25").Return(nil, nil)
				promoRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Percent above 100",
			promo:         &domain.Promocode{Code: "BIG", DiscountPercent: 150},
			expectedError: pricing.ErrInvalidPercent,
		},
		{
			name:          "Negative percent",
			promo:         &domain.Promocode{Code: "NEG", DiscountPercent: -5},
			expectedError: pricing.ErrInvalidPercent,
		},
		{
			name:          "Zero max uses",
			promo:         &domain.Promocode{Code: "ZERO", DiscountPercent: 25, MaxUses: &zeroUses},
			expectedError: ErrInvalidMaxUses,
		},
		{
			name:  "Duplicate code",
			promo: &domain.Promocode{Code: "SPRING25", DiscountPercent: 25},
			prepareMock: func() {
				promoRepo.EXPECT().FindByCode(gomock.Any(), "SPRING25").Return(&domain.Promocode{Code: "SPRING25"}, nil)
			},
			expectedError: ErrPromoExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Create(context.Background(), tt.promo)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, promoRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		code          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful delete",
			code: "SPRING25",
			prepareMock: func() {
				promoRepo.EXPECT().Delete(gomock.Any(), "SPRING25").Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown code",
			code: "NOPE",
			prepareMock: func() {
				promoRepo.EXPECT().Delete(gomock.Any(), "NOPE").Return(false, nil)
			},
			expectedError: ErrPromoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Delete(context.Background(), tt.code)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, promoRepo, _ := NewMock(t)

	promos := []domain.Promocode{{Code: "SPRING25", DiscountPercent: 25}}
	promoRepo.EXPECT().FindAll(gomock.Any()).Return(promos, nil)

	result, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, promos, result)
}
