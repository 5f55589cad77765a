package settlementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/domain"
	"teleshop/internal/gateway/cryptopay"
	"teleshop/internal/pg"
)

type mocks struct {
	invoiceRepo  *MockInvoiceRepo
	orderRepo    *MockOrderRepo
	cartRepo     *MockCartRepo
	catalogRepo  *MockCatalogRepo
	userRepo     *MockUserRepo
	referralRepo *MockReferralRepo
	gateway      *MockGateway
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		invoiceRepo:  NewMockInvoiceRepo(ctrl),
		orderRepo:    NewMockOrderRepo(ctrl),
		cartRepo:     NewMockCartRepo(ctrl),
		catalogRepo:  NewMockCatalogRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		referralRepo: NewMockReferralRepo(ctrl),
		gateway:      NewMockGateway(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.invoiceRepo, m.orderRepo, m.cartRepo, m.catalogRepo, m.userRepo, m.referralRepo, m.gateway, m.txManager, "USD")
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestSettleSingleProduct(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	refID := int64(100)
	invoice := &domain.Invoice{InvoiceID: 528412, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(528412)).Return(invoice, nil)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), int64(528412)).Return(cryptopay.StatusPaid, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42, RefID: &refID, DiscountPercent: 25}, nil)
	passthroughTx(m)
	m.invoiceRepo.EXPECT().ClaimSettlement(gomock.Any(), int64(528412)).Return(true, nil)
	m.catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(&domain.Product{
		ID: 7, Name: "TrafficGen", Price: 60.0, DeliveryPayload: "traffic_gen.zip",
	}, nil)
	m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order *domain.Order) error {
			assert.Equal(t, int64(42), order.UserID)
			assert.Equal(t, 7, order.ProductID)
			assert.InDelta(t, 45.0, order.Amount, 1e-9)
			assert.Equal(t, "USD", order.Currency)
			assert.Equal(t, domain.OrderStatusCompleted, order.Status)
			assert.Equal(t, int64(528412), *order.InvoiceID)
			return nil
		},
	)
	m.userRepo.EXPECT().CreditBalance(gomock.Any(), int64(100), 4.5).Return(nil)
	m.referralRepo.EXPECT().CreditEarnings(gomock.Any(), int64(42), int64(100), 4.5).Return(nil)

	result, err := service.Settle(context.Background(), 528412)
	assert.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.InDelta(t, 45.0, result.Total, 1e-9)
	assert.InDelta(t, 4.5, result.ReferrerCredit, 1e-9)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "traffic_gen.zip", result.Items[0].DeliveryPayload)
}

func TestSettleReplaysRecordedResult(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	refID := int64(100)
	invoiceID := int64(528412)
	invoice := &domain.Invoice{InvoiceID: invoiceID, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusSettled}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), invoiceID).Return(invoice, nil)
	m.orderRepo.EXPECT().FindByInvoiceID(gomock.Any(), invoiceID).Return([]domain.Order{
		{InvoiceID: &invoiceID, UserID: 42, ProductID: 7, Amount: 45.0, Status: domain.OrderStatusCompleted},
	}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42, RefID: &refID, DiscountPercent: 25}, nil)
	m.catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(&domain.Product{
		ID: 7, Name: "TrafficGen", Price: 60.0, DeliveryPayload: "traffic_gen.zip",
	}, nil)

	// No gateway call, no claim, no order writes, no referral credit: the
	// second settlement of a paid invoice only reads back the first one.
	result, err := service.Settle(context.Background(), invoiceID)
	assert.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.InDelta(t, 45.0, result.Total, 1e-9)
	assert.InDelta(t, 4.5, result.ReferrerCredit, 1e-9)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "traffic_gen.zip", result.Items[0].DeliveryPayload)
}

func TestSettleCart(t *testing.T) {
	service, m := NewMock(t)

	invoice := &domain.Invoice{InvoiceID: 600, UserID: 42, ProductID: nil, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(600)).Return(invoice, nil)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), int64(600)).Return(cryptopay.StatusPaid, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
	passthroughTx(m)
	m.invoiceRepo.EXPECT().ClaimSettlement(gomock.Any(), int64(600)).Return(true, nil)
	m.cartRepo.EXPECT().List(gomock.Any(), int64(42)).Return([]domain.CartLine{
		{ProductID: 1, Name: "A", Price: 10.0, DeliveryPayload: "a.zip"},
		{ProductID: 2, Name: "B", Price: 20.0, DeliveryPayload: "b.zip"},
	}, nil)
	m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.cartRepo.EXPECT().Clear(gomock.Any(), int64(42)).Return(nil)

	result, err := service.Settle(context.Background(), 600)
	assert.NoError(t, err)
	assert.InDelta(t, 30.0, result.Total, 1e-9)
	assert.Len(t, result.Items, 2)
	assert.Zero(t, result.ReferrerCredit)
}

func TestSettleNotYetPaid(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	invoice := &domain.Invoice{InvoiceID: 528412, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(528412)).Return(invoice, nil).Times(2)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), int64(528412)).Return(cryptopay.StatusUnpaid, nil).Times(2)

	// Repeatable without side effects.
	for i := 0; i < 2; i++ {
		result, err := service.Settle(context.Background(), 528412)
		assert.ErrorIs(t, err, ErrNotYetPaid)
		assert.Nil(t, result)
	}
}

func TestSettleGatewayErrorNeverSettles(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	invoice := &domain.Invoice{InvoiceID: 528412, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(528412)).Return(invoice, nil)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), int64(528412)).Return(cryptopay.Status(""), cryptopay.ErrUnavailable)

	result, err := service.Settle(context.Background(), 528412)
	assert.ErrorIs(t, err, cryptopay.ErrUnavailable)
	assert.Nil(t, result)
}

func TestSettleInvoiceNotFound(t *testing.T) {
	service, m := NewMock(t)

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, nil)

	result, err := service.Settle(context.Background(), 999)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	assert.Nil(t, result)
}

func TestSettleLostClaimRace(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	invoiceID := int64(528412)
	invoice := &domain.Invoice{InvoiceID: invoiceID, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), invoiceID).Return(invoice, nil)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), invoiceID).Return(cryptopay.StatusPaid, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil).Times(2)
	passthroughTx(m)
	m.invoiceRepo.EXPECT().ClaimSettlement(gomock.Any(), invoiceID).Return(false, nil)
	m.orderRepo.EXPECT().FindByInvoiceID(gomock.Any(), invoiceID).Return([]domain.Order{
		{InvoiceID: &invoiceID, UserID: 42, ProductID: 7, Amount: 45.0},
	}, nil)
	m.catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(&domain.Product{
		ID: 7, Name: "TrafficGen", Price: 60.0, DeliveryPayload: "traffic_gen.zip",
	}, nil)

	result, err := service.Settle(context.Background(), invoiceID)
	assert.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.InDelta(t, 45.0, result.Total, 1e-9)
}

func TestSettleRollsBackOnOrderError(t *testing.T) {
	service, m := NewMock(t)

	productID := 7
	invoice := &domain.Invoice{InvoiceID: 528412, UserID: 42, ProductID: &productID, Status: domain.InvoiceStatusPending}

	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(528412)).Return(invoice, nil)
	m.gateway.EXPECT().InvoiceStatus(gomock.Any(), int64(528412)).Return(cryptopay.StatusPaid, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&domain.User{ID: 42}, nil)
	passthroughTx(m)
	m.invoiceRepo.EXPECT().ClaimSettlement(gomock.Any(), int64(528412)).Return(true, nil)
	m.catalogRepo.EXPECT().FindProductByID(gomock.Any(), 7).Return(&domain.Product{ID: 7, Name: "TrafficGen", Price: 60.0}, nil)
	m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	result, err := service.Settle(context.Background(), 528412)
	assert.Error(t, err)
	assert.Nil(t, result)
}
