package settlementservice

//go:generate mockgen -source=settlementservice.go -destination=mocks.go -package=settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"teleshop/internal/domain"
	"teleshop/internal/gateway/cryptopay"
	"teleshop/internal/pg"
	"teleshop/internal/service/pricing"
)

type InvoiceRepo interface {
	FindByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
	ClaimSettlement(ctx context.Context, invoiceID int64) (bool, error)
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.Order, error)
}

type CartRepo interface {
	List(ctx context.Context, userID int64) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

type CatalogRepo interface {
	FindProductByID(ctx context.Context, productID int) (*domain.Product, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	CreditBalance(ctx context.Context, userID int64, amount float64) error
}

type ReferralRepo interface {
	CreditEarnings(ctx context.Context, userID, refUserID int64, amount float64) error
}

type Gateway interface {
	InvoiceStatus(ctx context.Context, invoiceID int64) (cryptopay.Status, error)
}

type Service struct {
	invoiceRepo  InvoiceRepo
	orderRepo    OrderRepo
	cartRepo     CartRepo
	catalogRepo  CatalogRepo
	userRepo     UserRepo
	referralRepo ReferralRepo
	gateway      Gateway
	txManager    pg.TXManager
	currency     string
}

func New(invoiceRepo InvoiceRepo, orderRepo OrderRepo, cartRepo CartRepo, catalogRepo CatalogRepo, userRepo UserRepo, referralRepo ReferralRepo, gateway Gateway, txManager pg.TXManager, currency string) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		catalogRepo:  catalogRepo,
		userRepo:     userRepo,
		referralRepo: referralRepo,
		gateway:      gateway,
		txManager:    txManager,
		currency:     currency,
	}
}

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrNotYetPaid is not a failure: the caller is expected to retry later,
	// and retrying has no side effects.
	ErrNotYetPaid = errors.New("invoice not yet paid")
)

type DeliveredItem struct {
	ProductName     string
	DeliveryPayload string
	Amount          float64
}

type Settlement struct {
	InvoiceID      int64
	Items          []DeliveredItem
	Total          float64
	ReferrerID     *int64
	ReferrerCredit float64
	Replayed       bool
}

// Settle converts a confirmed payment into order rows, referral credit and
// delivery payloads, exactly once per invoice. A second call for the same
// paid invoice returns the recorded result without touching anything.
func (s *Service) Settle(ctx context.Context, invoiceID int64) (*Settlement, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if invoice.Status == domain.InvoiceStatusSettled {
		return s.recordedResult(ctx, invoice)
	}

	status, err := s.gateway.InvoiceStatus(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if status != cryptopay.StatusPaid {
		return nil, ErrNotYetPaid
	}

	user, err := s.userRepo.FindByID(ctx, invoice.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invoice %d references unknown user %d", invoiceID, invoice.UserID)
	}

	var result *Settlement
	claimed := false
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err = s.invoiceRepo.ClaimSettlement(ctx, invoiceID)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}

		lines, err := s.resolveLines(ctx, invoice)
		if err != nil {
			return err
		}

		result = &Settlement{InvoiceID: invoiceID, ReferrerID: user.RefID}
		now := time.Now()
		for _, line := range lines {
			// Recomputed with the discount live at settlement time; this can
			// differ from the amount the gateway actually charged, which was
			// fixed at invoice creation.
			amount := pricing.FinalPrice(line.Price, user.DiscountPercent)

			order := &domain.Order{
				InvoiceID: &invoice.InvoiceID,
				UserID:    user.ID,
				ProductID: line.ProductID,
				Amount:    amount,
				Currency:  s.currency,
				Status:    domain.OrderStatusCompleted,
				CreatedAt: now,
			}
			if err := s.orderRepo.Save(ctx, order); err != nil {
				return err
			}

			if user.RefID != nil {
				credit := pricing.ReferralCut(amount)
				if err := s.userRepo.CreditBalance(ctx, *user.RefID, credit); err != nil {
					return err
				}
				if err := s.referralRepo.CreditEarnings(ctx, user.ID, *user.RefID, credit); err != nil {
					return err
				}
				result.ReferrerCredit += credit
			}

			result.Items = append(result.Items, DeliveredItem{
				ProductName:     line.Name,
				DeliveryPayload: line.DeliveryPayload,
				Amount:          amount,
			})
			result.Total += amount
		}

		if invoice.ProductID == nil {
			if err := s.cartRepo.Clear(ctx, user.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !claimed {
		// Lost the race to another settlement attempt; hand back its result.
		return s.recordedResult(ctx, invoice)
	}

	zap.L().Info("invoice settled",
		zap.Int64("invoiceID", invoiceID),
		zap.Int64("userID", user.ID),
		zap.Float64("total", result.Total),
		zap.Int("lines", len(result.Items)),
	)
	return result, nil
}

// resolveLines enumerates what the invoice pays for: the single product, or
// the cart contents as of settlement time.
func (s *Service) resolveLines(ctx context.Context, invoice *domain.Invoice) ([]domain.CartLine, error) {
	if invoice.ProductID != nil {
		product, err := s.catalogRepo.FindProductByID(ctx, *invoice.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("invoice %d references missing product %d", invoice.InvoiceID, *invoice.ProductID)
		}
		return []domain.CartLine{{
			ProductID:       product.ID,
			Name:            product.Name,
			Price:           product.Price,
			DeliveryPayload: product.DeliveryPayload,
		}}, nil
	}
	return s.cartRepo.List(ctx, invoice.UserID)
}

// recordedResult rebuilds the settlement from the order rows written when
// the invoice was first settled.
func (s *Service) recordedResult(ctx context.Context, invoice *domain.Invoice) (*Settlement, error) {
	orders, err := s.orderRepo.FindByInvoiceID(ctx, invoice.InvoiceID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, invoice.UserID)
	if err != nil {
		return nil, err
	}

	result := &Settlement{InvoiceID: invoice.InvoiceID, Replayed: true}
	if user != nil {
		result.ReferrerID = user.RefID
	}
	for _, order := range orders {
		item := DeliveredItem{Amount: order.Amount}
		product, err := s.catalogRepo.FindProductByID(ctx, order.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			item.ProductName = product.Name
			item.DeliveryPayload = product.DeliveryPayload
		}
		result.Items = append(result.Items, item)
		result.Total += order.Amount
		if result.ReferrerID != nil {
			result.ReferrerCredit += pricing.ReferralCut(order.Amount)
		}
	}
	return result, nil
}
