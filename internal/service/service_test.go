package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/config"
	"teleshop/internal/gateway/cryptopay"
	"teleshop/internal/pg"
	"teleshop/internal/repo"
	"teleshop/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	cfg := &config.Config{Currency: "USD"}
	repos := repo.New(mockDB, mockTxManager)
	gateway := cryptopay.New(cfg, clients.NewHTTPClient())

	services := New(cfg, repos, gateway, mockTxManager)

	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.CartService)
	assert.NotNil(t, services.PromoService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.CheckoutService)
	assert.NotNil(t, services.SettlementService)
}
