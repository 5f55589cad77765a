package cartservice

//go:generate mockgen -source=cartservice.go -destination=mocks.go -package=cartservice

import (
	"context"
	"errors"

	"teleshop/internal/domain"
	"teleshop/internal/service/pricing"
)

type CartRepo interface {
	Add(ctx context.Context, userID int64, productID int) error
	Remove(ctx context.Context, userID int64, productID int) error
	Clear(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64) ([]domain.CartLine, error)
}

type CatalogRepo interface {
	FindProductByID(ctx context.Context, productID int) (*domain.Product, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
}

type Service struct {
	cartRepo    CartRepo
	catalogRepo CatalogRepo
	userRepo    UserRepo
}

func New(cartRepo CartRepo, catalogRepo CatalogRepo, userRepo UserRepo) *Service {
	return &Service{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
	}
}

var ErrProductNotFound = errors.New("product not found")

// Line is a cart entry priced for display with the user's current discount.
type Line struct {
	ProductID  int
	Name       string
	Price      float64
	FinalPrice float64
}

type Cart struct {
	Lines []Line
	Total float64
}

func (s *Service) Add(ctx context.Context, userID int64, productID int) error {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.cartRepo.Add(ctx, userID, productID)
}

func (s *Service) Remove(ctx context.Context, userID int64, productID int) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.cartRepo.Clear(ctx, userID)
}

// List returns the cart priced at the live catalog price: an admin price
// edit before checkout changes the displayed total.
func (s *Service) List(ctx context.Context, userID int64) (*Cart, error) {
	discountPercent := 0
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		discountPercent = user.DiscountPercent
	}

	lines, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Lines: make([]Line, 0, len(lines))}
	for _, line := range lines {
		finalPrice := pricing.FinalPrice(line.Price, discountPercent)
		cart.Lines = append(cart.Lines, Line{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Price:      line.Price,
			FinalPrice: finalPrice,
		})
		cart.Total += finalPrice
	}
	return cart, nil
}
