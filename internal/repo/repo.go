package repo

import (
	"teleshop/internal/pg"
	cartrepo "teleshop/internal/repo/cart-repo"
	catalogrepo "teleshop/internal/repo/catalog-repo"
	invoicerepo "teleshop/internal/repo/invoice-repo"
	orderrepo "teleshop/internal/repo/order-repo"
	promorepo "teleshop/internal/repo/promo-repo"
	referralrepo "teleshop/internal/repo/referral-repo"
	userrepo "teleshop/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	CatalogRepo  *catalogrepo.Repository
	CartRepo     *cartrepo.Repository
	PromoRepo    *promorepo.Repository
	InvoiceRepo  *invoicerepo.Repository
	OrderRepo    *orderrepo.Repository
	ReferralRepo *referralrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CatalogRepo:  catalogrepo.New(conn, txManager),
		CartRepo:     cartrepo.New(conn),
		PromoRepo:    promorepo.New(conn),
		InvoiceRepo:  invoicerepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		ReferralRepo: referralrepo.New(conn),
	}
}
