package cartservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCartRepo, *MockCatalogRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	cartRepo := NewMockCartRepo(ctrl)
	catalogRepo := NewMockCatalogRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(cartRepo, catalogRepo, userRepo)
	defer ctrl.Finish()
	return service, cartRepo, catalogRepo, userRepo
}

func TestAdd(t *testing.T) {
	service, cartRepo, catalogRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		productID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Successful add",
			productID: 7,
			prepareMock: func() {
				catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(&domain.Product{ID: 7}, nil)
				cartRepo.EXPECT().Add(gomock.Any(), int64(42), 7).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "Unknown product",
			productID: 99,
			prepareMock: func() {
				catalogRepo.EXPECT().FindProductByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name:      "Lookup error",
			productID: 7,
			prepareMock: func() {
				catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Add(context.Background(), 42, tt.productID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("Prices lines with the user's discount", func(t *testing.T) {
		service, cartRepo, _, userRepo := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42, DiscountPercent: 25}, nil)
		cartRepo.EXPECT().List(gomock.Any(), int64(42)).Return([]domain.CartLine{
			{ProductID: 7, Name: "TrafficGen", Price: 60.0},
			{ProductID: 8, Name: "Parser", Price: 20.0},
		}, nil)

		cart, err := service.List(context.Background(), 42)
		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 2)
		assert.InDelta(t, 45.0, cart.Lines[0].FinalPrice, 1e-9)
		assert.InDelta(t, 15.0, cart.Lines[1].FinalPrice, 1e-9)
		assert.InDelta(t, 60.0, cart.Total, 1e-9)
	})

	t.Run("Unknown user prices without discount", func(t *testing.T) {
		service, cartRepo, _, userRepo := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, nil)
		cartRepo.EXPECT().List(gomock.Any(), int64(42)).Return([]domain.CartLine{
			{ProductID: 7, Name: "TrafficGen", Price: 60.0},
		}, nil)

		cart, err := service.List(context.Background(), 42)
		assert.NoError(t, err)
		assert.InDelta(t, 60.0, cart.Total, 1e-9)
	})

	t.Run("Empty cart", func(t *testing.T) {
		service, cartRepo, _, userRepo := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
		cartRepo.EXPECT().List(gomock.Any(), int64(42)).Return(nil, nil)

		cart, err := service.List(context.Background(), 42)
		assert.NoError(t, err)
		assert.Empty(t, cart.Lines)
		assert.Zero(t, cart.Total)
	})
}

func TestRemove(t *testing.T) {
	service, cartRepo, _, _ := NewMock(t)

	cartRepo.EXPECT().Remove(gomock.Any(), int64(42), 7).Return(nil)
	assert.NoError(t, service.Remove(context.Background(), 42, 7))
}

func TestClear(t *testing.T) {
	service, cartRepo, _, _ := NewMock(t)

	cartRepo.EXPECT().Clear(gomock.Any(), int64(42)).Return(nil)
	assert.NoError(t, service.Clear(context.Background(), 42))
}
