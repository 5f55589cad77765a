package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "teleshop/docs"
	"teleshop/internal/config"
	"teleshop/internal/service"
	"teleshop/pkg/auth"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{AdminPasswordHash: "$2a$10$abcdefghijklmnopqrstuv"}

	h := New(cfg, &service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.CatalogHandler)
	assert.NotNil(t, h.CartHandler)
	assert.NotNil(t, h.PromoHandler)
	assert.NotNil(t, h.CheckoutHandler)
	assert.NotNil(t, h.ProfileHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockCartHandler := NewMockCartHandler(ctrl)
	mockPromoHandler := NewMockPromoHandler(ctrl)
	mockCheckoutHandler := NewMockCheckoutHandler(ctrl)
	mockProfileHandler := NewMockProfileHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().ListCategories(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().ListProducts(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().DeleteProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().DeleteCategory(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().Add(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().Clear(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().Remove(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCheckoutHandler.EXPECT().Checkout(gomock.Any(), gomock.Any()).AnyTimes()
	mockCheckoutHandler.EXPECT().Settle(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().ListReferrals(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		CatalogHandler:  mockCatalogHandler,
		CartHandler:     mockCartHandler,
		PromoHandler:    mockPromoHandler,
		CheckoutHandler: mockCheckoutHandler,
		ProfileHandler:  mockProfileHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	adminToken, err := jwtService.GenerateJWT(auth.RoleAdmin, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	strangerToken, err := jwtService.GenerateJWT("stranger", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/catalog/categories", "", http.StatusOK},
		{"GET", "/api/catalog/products", "", http.StatusOK},
		{"GET", "/api/catalog/products/7", "", http.StatusOK},
		{"POST", "/api/users/", "", http.StatusOK},
		{"GET", "/api/users/42/profile", "", http.StatusOK},
		{"GET", "/api/users/42/referrals", "", http.StatusOK},
		{"POST", "/api/users/42/cart/", "", http.StatusOK},
		{"GET", "/api/users/42/cart/", "", http.StatusOK},
		{"DELETE", "/api/users/42/cart/7", "", http.StatusOK},
		{"POST", "/api/users/42/promo", "", http.StatusOK},
		{"POST", "/api/users/42/checkout", "", http.StatusOK},
		{"POST", "/api/invoices/528412/settle", "", http.StatusOK},
		{"POST", "/api/admin/products", "", http.StatusUnauthorized},
		{"POST", "/api/admin/products", adminToken, http.StatusOK},
		{"PATCH", "/api/admin/products/7", adminToken, http.StatusOK},
		{"POST", "/api/admin/categories", strangerToken, http.StatusForbidden},
		{"GET", "/api/admin/promocodes", "", http.StatusUnauthorized},
		{"GET", "/api/admin/promocodes", adminToken, http.StatusOK},
		{"DELETE", "/api/admin/promocodes/SPRING25", strangerToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
