package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/pg"
	cartrepo "teleshop/internal/repo/cart-repo"
	catalogrepo "teleshop/internal/repo/catalog-repo"
	invoicerepo "teleshop/internal/repo/invoice-repo"
	orderrepo "teleshop/internal/repo/order-repo"
	promorepo "teleshop/internal/repo/promo-repo"
	referralrepo "teleshop/internal/repo/referral-repo"
	userrepo "teleshop/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CatalogRepo)
	assert.NotNil(t, repo.CartRepo)
	assert.NotNil(t, repo.PromoRepo)
	assert.NotNil(t, repo.InvoiceRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.ReferralRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &cartrepo.Repository{}, repo.CartRepo)
	assert.IsType(t, &promorepo.Repository{}, repo.PromoRepo)
	assert.IsType(t, &invoicerepo.Repository{}, repo.InvoiceRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &referralrepo.Repository{}, repo.ReferralRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
