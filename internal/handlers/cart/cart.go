package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teleshop/internal/dto"
	"teleshop/internal/service/cartservice"
	"teleshop/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, userID int64, productID int) error
	Remove(ctx context.Context, userID int64, productID int) error
	Clear(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64) (*cartservice.Cart, error)
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

// Add godoc
//
//	@Summary		Add a product to the cart
//	@Description	Idempotent: re-adding the same product keeps a single entry.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"User ID"
//	@Param			request	body		dto.AddCartRequestDTO	true	"Product to add"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/cart [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.AddCartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cartService.Add(r.Context(), userID, req.ProductID); err != nil {
		if errors.Is(err, cartservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Product added to cart"})
}

// Remove godoc
//
//	@Summary		Remove a product from the cart
//	@Description	No-op when the product is not in the cart.
//	@Tags			Cart
//	@Produce		json
//	@Param			userID		path		int	true	"User ID"
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	utils.Response
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/cart/{productID} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.cartService.Remove(r.Context(), userID, productID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Product removed from cart"})
}

// Clear godoc
//
//	@Summary		Clear the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	utils.Response
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.cartService.Clear(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Cart cleared"})
}

// List godoc
//
//	@Summary		View the cart
//	@Description	Cart lines priced at the live catalog price with the user's current discount applied.
//	@Tags			Cart
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.CartResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/cart [get]
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	cart, err := h.cartService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CartResponseDTO{Items: make([]dto.CartLineDTO, 0, len(cart.Lines)), Total: cart.Total}
	for _, line := range cart.Lines {
		response.Items = append(response.Items, dto.CartLineDTO{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Price:      line.Price,
			FinalPrice: line.FinalPrice,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
