package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/domain"
	"teleshop/internal/dto"
	"teleshop/internal/service/catalogservice"
)

func NewMock(t *testing.T) (*CatalogHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProductHandler(t *testing.T) {
	tests := []struct {
		name          string
		productID     string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Found",
			productID: "7",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetProduct(gomock.Any(), 7).
					Return(&domain.Product{ID: 7, Name: "TrafficGen", Price: 60, CategoryID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Not found",
			productID: "99",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetProduct(gomock.Any(), 99).Return(nil, catalogservice.ErrProductNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: catalogservice.ErrProductNotFound.Error(),
		},
		{
			name:          "Invalid product id",
			productID:     "abc",
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid product id",
		},
		{
			name:      "Internal server error",
			productID: "7",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetProduct(gomock.Any(), 7).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := newRequest(http.MethodGet, "/api/catalog/products/"+tt.productID, "", map[string]string{"productID": tt.productID})
			w := httptest.NewRecorder()

			handler.GetProduct(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ProductResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "TrafficGen", body.Name)
			}
		})
	}
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Filtered by category", func(t *testing.T) {
		handler, service := NewMock(t)

		categoryID := 2
		service.EXPECT().ListProducts(gomock.Any(), &categoryID, (*int)(nil)).
			Return([]domain.Product{{ID: 7, Name: "TrafficGen", CategoryID: 2}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/catalog/products?category_id=2", http.NoBody)
		w := httptest.NewRecorder()

		handler.ListProducts(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ProductResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("Invalid category filter", func(t *testing.T) {
		handler, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodGet, "/api/catalog/products?category_id=abc", http.NoBody)
		w := httptest.NewRecorder()

		handler.ListProducts(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListCategoriesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListCategories(gomock.Any(), (*int)(nil)).
		Return([]domain.Category{{ID: 2, Name: "Software"}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/catalog/categories", http.NoBody)
	w := httptest.NewRecorder()

	handler.ListCategories(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.CategoryResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Software", body[0].Name)
}

func TestCreateProductHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"TrafficGen","price":60,"category_id":2,"delivery_payload":"traffic_gen.zip"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
					Return(&domain.Product{ID: 7, Name: "TrafficGen", Price: 60, CategoryID: 2}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Negative price",
			body: `{"name":"TrafficGen","price":-1,"category_id":2}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, catalogservice.ErrInvalidPrice)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: catalogservice.ErrInvalidPrice.Error(),
		},
		{
			name: "Unknown category",
			body: `{"name":"TrafficGen","price":60,"category_id":99}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, catalogservice.ErrCategoryNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: catalogservice.ErrCategoryNotFound.Error(),
		},
		{
			name: "Duplicate product",
			body: `{"name":"TrafficGen","price":60,"category_id":2}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, catalogservice.ErrProductExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: catalogservice.ErrProductExists.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateProduct(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Run("Changes the price", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().UpdateProduct(gomock.Any(), 7, gomock.Any()).
			DoAndReturn(func(ctx context.Context, productID int, apply func(*domain.Product)) (*domain.Product, error) {
				product := &domain.Product{ID: 7, Name: "TrafficGen", Price: 60, CategoryID: 2}
				apply(product)
				return product, nil
			})

		r := newRequest(http.MethodPatch, "/api/admin/products/7", `{"price":50}`, map[string]string{"productID": "7"})
		w := httptest.NewRecorder()

		handler.UpdateProduct(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ProductResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.InDelta(t, 50.0, body.Price, 1e-9)
		assert.Equal(t, "TrafficGen", body.Name)
	})

	t.Run("Unknown product", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().UpdateProduct(gomock.Any(), 99, gomock.Any()).Return(nil, catalogservice.ErrProductNotFound)

		r := newRequest(http.MethodPatch, "/api/admin/products/99", `{"price":50}`, map[string]string{"productID": "99"})
		w := httptest.NewRecorder()

		handler.UpdateProduct(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Run("Successful deletion", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().DeleteProduct(gomock.Any(), 7).Return(nil)

		r := newRequest(http.MethodDelete, "/api/admin/products/7", "", map[string]string{"productID": "7"})
		w := httptest.NewRecorder()

		handler.DeleteProduct(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown product", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().DeleteProduct(gomock.Any(), 99).Return(catalogservice.ErrProductNotFound)

		r := newRequest(http.MethodDelete, "/api/admin/products/99", "", map[string]string{"productID": "99"})
		w := httptest.NewRecorder()

		handler.DeleteProduct(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Run("Nested category", func(t *testing.T) {
		handler, service := NewMock(t)

		parentID := 2
		service.EXPECT().CreateCategory(gomock.Any(), "Bots", &parentID).
			Return(&domain.Category{ID: 3, Name: "Bots", ParentID: &parentID}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewBufferString(`{"name":"Bots","parent_id":2}`))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing name", func(t *testing.T) {
		handler, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewBufferString(`{"parent_id":2}`))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		handler, service := NewMock(t)

		parentID := 99
		service.EXPECT().CreateCategory(gomock.Any(), "Bots", &parentID).Return(nil, catalogservice.ErrCategoryNotFound)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewBufferString(`{"name":"Bots","parent_id":99}`))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	tests := []struct {
		name          string
		categoryID    string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Empty category deleted",
			categoryID: "3",
			prepareMock: func(service *MockService) {
				service.EXPECT().DeleteCategory(gomock.Any(), 3).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "Category still has products",
			categoryID: "2",
			prepareMock: func(service *MockService) {
				service.EXPECT().DeleteCategory(gomock.Any(), 2).Return(catalogservice.ErrCategoryNotEmpty)
			},
			expectedCode:  http.StatusConflict,
			expectedError: catalogservice.ErrCategoryNotEmpty.Error(),
		},
		{
			name:       "Unknown category",
			categoryID: "99",
			prepareMock: func(service *MockService) {
				service.EXPECT().DeleteCategory(gomock.Any(), 99).Return(catalogservice.ErrCategoryNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: catalogservice.ErrCategoryNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := newRequest(http.MethodDelete, "/api/admin/categories/"+tt.categoryID, "", map[string]string{"categoryID": tt.categoryID})
			w := httptest.NewRecorder()

			handler.DeleteCategory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
