package checkoutservice

//go:generate mockgen -source=checkoutservice.go -destination=mocks.go -package=checkoutservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teleshop/internal/domain"
	"teleshop/internal/service/pricing"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
}

type CatalogRepo interface {
	FindProductByID(ctx context.Context, productID int) (*domain.Product, error)
}

type CartRepo interface {
	List(ctx context.Context, userID int64) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

type InvoiceRepo interface {
	Save(ctx context.Context, invoice *domain.Invoice) error
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
}

type Gateway interface {
	CreateInvoice(ctx context.Context, amount float64, description, payload string) (int64, string, error)
}

type Service struct {
	userRepo    UserRepo
	catalogRepo CatalogRepo
	cartRepo    CartRepo
	invoiceRepo InvoiceRepo
	orderRepo   OrderRepo
	gateway     Gateway
	currency    string
}

func New(userRepo UserRepo, catalogRepo CatalogRepo, cartRepo CartRepo, invoiceRepo InvoiceRepo, orderRepo OrderRepo, gateway Gateway, currency string) *Service {
	return &Service{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		currency:    currency,
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartEmpty       = errors.New("cart is empty")
)

type DeliveredItem struct {
	ProductName     string
	DeliveryPayload string
	Amount          float64
}

// Checkout is the outcome of a purchase intent: either a pending invoice the
// buyer must pay (InvoiceID/PayURL set), or an already delivered free-tier
// purchase (Delivered set).
type Checkout struct {
	InvoiceID int64
	PayURL    string
	Amount    float64
	Delivered []DeliveredItem
}

// BuyProduct opens an invoice for a single product at the user's current
// discount. A zero amount skips the gateway entirely and delivers at once.
func (s *Service) BuyProduct(ctx context.Context, userID int64, productID int) (*Checkout, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	amount := pricing.FinalPrice(product.Price, user.DiscountPercent)
	if amount == 0 {
		item, err := s.deliverFree(ctx, userID, product)
		if err != nil {
			return nil, err
		}
		return &Checkout{Delivered: []DeliveredItem{*item}}, nil
	}

	description := fmt.Sprintf("Purchase of product #%d", product.ID)
	payload := correlationPayload(userID, product.ID)
	invoiceID, payURL, err := s.gateway.CreateInvoice(ctx, amount, description, payload)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		InvoiceID: invoiceID,
		UserID:    userID,
		ProductID: &product.ID,
		Amount:    amount,
		Payload:   payload,
		Status:    domain.InvoiceStatusPending,
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	zap.L().Info("invoice opened",
		zap.Int64("invoiceID", invoiceID),
		zap.Int64("userID", userID),
		zap.Float64("amount", amount),
	)
	return &Checkout{InvoiceID: invoiceID, PayURL: payURL, Amount: amount}, nil
}

// PayCart opens one invoice for the whole cart. The amount is the sum of
// discounted line prices at this moment; the lines themselves are resolved
// again at settlement time.
func (s *Service) PayCart(ctx context.Context, userID int64) (*Checkout, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	lines, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var amount float64
	for _, line := range lines {
		amount += pricing.FinalPrice(line.Price, user.DiscountPercent)
	}

	if amount == 0 {
		checkout := &Checkout{}
		for _, line := range lines {
			product, err := s.catalogRepo.FindProductByID(ctx, line.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				continue
			}
			item, err := s.deliverFree(ctx, userID, product)
			if err != nil {
				return nil, err
			}
			checkout.Delivered = append(checkout.Delivered, *item)
		}
		if err := s.cartRepo.Clear(ctx, userID); err != nil {
			return nil, err
		}
		return checkout, nil
	}

	description := fmt.Sprintf("Purchase of %d cart item(s)", len(lines))
	payload := correlationPayload(userID, 0)
	invoiceID, payURL, err := s.gateway.CreateInvoice(ctx, amount, description, payload)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		InvoiceID: invoiceID,
		UserID:    userID,
		ProductID: nil,
		Amount:    amount,
		Payload:   payload,
		Status:    domain.InvoiceStatusPending,
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	zap.L().Info("cart invoice opened",
		zap.Int64("invoiceID", invoiceID),
		zap.Int64("userID", userID),
		zap.Float64("amount", amount),
		zap.Int("lines", len(lines)),
	)
	return &Checkout{InvoiceID: invoiceID, PayURL: payURL, Amount: amount}, nil
}

func (s *Service) deliverFree(ctx context.Context, userID int64, product *domain.Product) (*DeliveredItem, error) {
	order := &domain.Order{
		UserID:    userID,
		ProductID: product.ID,
		Amount:    0,
		Currency:  s.currency,
		Status:    domain.OrderStatusCompleted,
		CreatedAt: time.Now(),
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return &DeliveredItem{ProductName: product.Name, DeliveryPayload: product.DeliveryPayload}, nil
}

func correlationPayload(userID int64, productID int) string {
	return fmt.Sprintf("%s_%d_%d", uuid.NewString(), userID, productID)
}
