package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "teleshop/docs"
	"teleshop/internal/config"
	authhandlers "teleshop/internal/handlers/auth"
	carthandlers "teleshop/internal/handlers/cart"
	cataloghandlers "teleshop/internal/handlers/catalog"
	checkouthandlers "teleshop/internal/handlers/checkout"
	profilehandlers "teleshop/internal/handlers/profile"
	promohandlers "teleshop/internal/handlers/promo"
	"teleshop/internal/service"
	"teleshop/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PromoHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	ListReferrals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CatalogHandler  CatalogHandler
	CartHandler     CartHandler
	PromoHandler    PromoHandler
	CheckoutHandler CheckoutHandler
	ProfileHandler  ProfileHandler
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(cfg.AdminPasswordHash, &auth.HashService{}, &auth.JWTService{}),
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		CartHandler:     carthandlers.New(s.CartService),
		PromoHandler:    promohandlers.New(s.PromoService),
		CheckoutHandler: checkouthandlers.New(s.CheckoutService, s.SettlementService),
		ProfileHandler:  profilehandlers.New(s.ProfileService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", h.CatalogHandler.ListCategories)
			r.Get("/products", h.CatalogHandler.ListProducts)
			r.Get("/products/{productID}", h.CatalogHandler.GetProduct)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.ProfileHandler.Register)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/profile", h.ProfileHandler.GetProfile)
				r.Get("/referrals", h.ProfileHandler.ListReferrals)
				r.Route("/cart", func(r chi.Router) {
					r.Post("/", h.CartHandler.Add)
					r.Get("/", h.CartHandler.List)
					r.Delete("/", h.CartHandler.Clear)
					r.Delete("/{productID}", h.CartHandler.Remove)
				})
				r.Post("/promo", h.PromoHandler.Redeem)
				r.Post("/checkout", h.CheckoutHandler.Checkout)
			})
		})

		r.Post("/invoices/{invoiceID}/settle", h.CheckoutHandler.Settle)

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAction(auth.ActionManageCatalog))
				r.Post("/products", h.CatalogHandler.CreateProduct)
				r.Patch("/products/{productID}", h.CatalogHandler.UpdateProduct)
				r.Delete("/products/{productID}", h.CatalogHandler.DeleteProduct)
				r.Post("/categories", h.CatalogHandler.CreateCategory)
				r.Delete("/categories/{categoryID}", h.CatalogHandler.DeleteCategory)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAction(auth.ActionManagePromos))
				r.Post("/promocodes", h.PromoHandler.Create)
				r.Get("/promocodes", h.PromoHandler.List)
				r.Delete("/promocodes/{code}", h.PromoHandler.Delete)
			})
		})
	})

	return r
}
