package service

import (
	"teleshop/internal/config"
	"teleshop/internal/pg"
	"teleshop/internal/repo"
	"teleshop/internal/service/cartservice"
	"teleshop/internal/service/catalogservice"
	"teleshop/internal/service/checkoutservice"
	"teleshop/internal/service/profileservice"
	"teleshop/internal/service/promoservice"
	"teleshop/internal/service/settlementservice"
)

type Services struct {
	CatalogService    *catalogservice.Service
	CartService       *cartservice.Service
	PromoService      *promoservice.Service
	ProfileService    *profileservice.Service
	CheckoutService   *checkoutservice.Service
	SettlementService *settlementservice.Service
}

// Gateway is the payment provider surface the services consume.
type Gateway interface {
	checkoutservice.Gateway
	settlementservice.Gateway
}

func New(cfg *config.Config, repo *repo.Repositories, gateway Gateway, txManager pg.TXManager) *Services {
	catalogService := catalogservice.New(repo.CatalogRepo)
	cartService := cartservice.New(repo.CartRepo, repo.CatalogRepo, repo.UserRepo)
	promoService := promoservice.New(repo.PromoRepo, repo.UserRepo)
	profileService := profileservice.New(repo.UserRepo, repo.ReferralRepo, repo.OrderRepo)
	checkoutService := checkoutservice.New(repo.UserRepo, repo.CatalogRepo, repo.CartRepo, repo.InvoiceRepo, repo.OrderRepo, gateway, cfg.Currency)
	settlementService := settlementservice.New(repo.InvoiceRepo, repo.OrderRepo, repo.CartRepo, repo.CatalogRepo, repo.UserRepo, repo.ReferralRepo, gateway, txManager, cfg.Currency)

	return &Services{
		CatalogService:    catalogService,
		CartService:       cartService,
		PromoService:      promoService,
		ProfileService:    profileService,
		CheckoutService:   checkoutService,
		SettlementService: settlementService,
	}
}
