package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teleshop/internal/domain"
	"teleshop/internal/dto"
	"teleshop/internal/service/catalogservice"
	"teleshop/pkg/utils"
)

type Service interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	ListProducts(ctx context.Context, categoryID, subcategoryID *int) ([]domain.Product, error)
	ListCategories(ctx context.Context, parentID *int) ([]domain.Category, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, apply func(*domain.Product)) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
	CreateCategory(ctx context.Context, name string, parentID *int) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func toProductDTO(product *domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		CategoryID:    product.CategoryID,
		SubcategoryID: product.SubcategoryID,
		MediaHandle:   product.MediaHandle,
	}
}

func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Description	Resolve a product by id with its full record.
//	@Tags			Catalog
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	dto.ProductResponseDTO
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/products/{productID} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	List products filtered by category and subcategory.
//	@Tags			Catalog
//	@Produce		json
//	@Param			category_id		query		int	false	"Category ID"
//	@Param			subcategory_id	query		int	false	"Subcategory ID"
//	@Success		200				{array}		dto.ProductResponseDTO
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := optionalIntParam(r, "category_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	subcategoryID, err := optionalIntParam(r, "subcategory_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid subcategory id")
		return
	}

	products, err := h.catalogService.ListProducts(r.Context(), categoryID, subcategoryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProductResponseDTO, 0, len(products))
	for _, product := range products {
		response = append(response, toProductDTO(&product))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Description	List categories under a parent; omit parent_id for top-level ones.
//	@Tags			Catalog
//	@Produce		json
//	@Param			parent_id	query		int	false	"Parent category ID"
//	@Success		200			{array}		dto.CategoryResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	parentID, err := optionalIntParam(r, "parent_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid parent id")
		return
	}

	categories, err := h.catalogService.ListCategories(r.Context(), parentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.CategoryResponseDTO{
			ID:       category.ID,
			Name:     category.Name,
			ParentID: category.ParentID,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Add a product to the catalog; duplicates within the same category pair are rejected.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product to create"
//	@Success		201		{object}	dto.ProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Failure		409		{object}	utils.Response	"Product already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), &domain.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		SubcategoryID:   req.SubcategoryID,
		DeliveryPayload: req.DeliveryPayload,
		MediaHandle:     req.MediaHandle,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalogservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrProductExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProductDTO(product))
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Change one or more fields of an existing product.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productID	path		int							true	"Product ID"
//	@Param			request		body		dto.UpdateProductRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.ProductResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{productID} [patch]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req dto.UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), productID, func(p *domain.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.DeliveryPayload != nil {
			p.DeliveryPayload = *req.DeliveryPayload
		}
		if req.MediaHandle != nil {
			p.MediaHandle = *req.MediaHandle
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Description	Remove a product together with its cart and order references.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	utils.Response
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{productID} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Product deleted"})
}

// CreateCategory godoc
//
//	@Summary		Create a category
//	@Description	Add a category, optionally nested under a parent.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCategoryRequestDTO	true	"Category to create"
//	@Success		201		{object}	dto.CategoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Parent category not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories [post]
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req.Name, req.ParentID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCategoryNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CategoryResponseDTO{
		ID:       category.ID,
		Name:     category.Name,
		ParentID: category.ParentID,
	})
}

// DeleteCategory godoc
//
//	@Summary		Delete a category
//	@Description	Remove a category; rejected while any product references it.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	utils.Response
//	@Failure		404			{object}	utils.Response	"Category not found"
//	@Failure		409			{object}	utils.Response	"Category still has products"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories/{categoryID} [delete]
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.catalogService.DeleteCategory(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrCategoryNotEmpty):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Category deleted"})
}
