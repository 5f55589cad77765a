package promo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teleshop/internal/domain"
	"teleshop/internal/dto"
	"teleshop/internal/service/pricing"
	"teleshop/internal/service/promoservice"
	"teleshop/pkg/utils"
)

type Service interface {
	Redeem(ctx context.Context, userID int64, code string) (int, error)
	Create(ctx context.Context, promo *domain.Promocode) error
	List(ctx context.Context) ([]domain.Promocode, error)
	Delete(ctx context.Context, code string) error
}

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem a promocode
//	@Description	Claims one use of the code and overwrites the user's discount with its percent.
//	@Tags			Promo
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.RedeemPromoRequestDTO	true	"Code to redeem"
//	@Success		200		{object}	dto.RedeemPromoResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Promocode not found"
//	@Failure		409		{object}	utils.Response	"Promocode expired or exhausted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/promo [post]
func (h *PromoHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.RedeemPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	discountPercent, err := h.promoService.Redeem(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, promoservice.ErrPromoNotFound), errors.Is(err, promoservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, promoservice.ErrPromoExpired), errors.Is(err, promoservice.ErrPromoExhausted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemPromoResponseDTO{DiscountPercent: discountPercent})
}

// Create godoc
//
//	@Summary		Create a promocode
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreatePromoRequestDTO	true	"Promocode to create"
//	@Success		201		{object}	dto.PromoResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Promocode already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promocodes [post]
func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	promo := &domain.Promocode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Expiration:      req.Expiration,
		MaxUses:         req.MaxUses,
	}
	if err := h.promoService.Create(r.Context(), promo); err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidPercent), errors.Is(err, promoservice.ErrInvalidMaxUses):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, promoservice.ErrPromoExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PromoResponseDTO{
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		Expiration:      promo.Expiration,
		MaxUses:         promo.MaxUses,
	})
}

// List godoc
//
//	@Summary		List promocodes
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PromoResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promocodes [get]
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promoService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PromoResponseDTO, 0, len(promos))
	for _, promo := range promos {
		response = append(response, dto.PromoResponseDTO{
			Code:            promo.Code,
			DiscountPercent: promo.DiscountPercent,
			Expiration:      promo.Expiration,
			MaxUses:         promo.MaxUses,
			UsesCount:       promo.UsesCount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete godoc
//
//	@Summary		Delete a promocode
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			code	path		string	true	"Promocode"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Promocode not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promocodes/{code} [delete]
func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.promoService.Delete(r.Context(), code); err != nil {
		if errors.Is(err, promoservice.ErrPromoNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Promocode deleted"})
}
