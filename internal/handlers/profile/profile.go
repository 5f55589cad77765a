package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teleshop/internal/domain"
	"teleshop/internal/dto"
	"teleshop/internal/service/profileservice"
	"teleshop/pkg/utils"
)

type Service interface {
	GetOrCreate(ctx context.Context, userID int64, refID *int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*profileservice.Profile, error)
	ListReferrals(ctx context.Context, userID int64) ([]domain.Referral, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Idempotent: an existing user is returned unchanged, and the referrer link is fixed on first contact.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterUserRequestDTO	true	"User to register"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *ProfileHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.GetOrCreate(r.Context(), req.ID, req.RefID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:              user.ID,
		Balance:         user.Balance,
		DiscountPercent: user.DiscountPercent,
	})
}

// GetProfile godoc
//
//	@Summary		View a user profile
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:              profile.User.ID,
		Balance:         profile.User.Balance,
		DiscountPercent: profile.User.DiscountPercent,
		PurchasesCount:  profile.PurchasesCount,
		ReferralsCount:  profile.ReferralsCount,
		Earnings:        profile.Earnings,
	})
}

// ListReferrals godoc
//
//	@Summary		List a user's referrals
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.ReferralResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/referrals [get]
func (h *ProfileHandler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	referrals, err := h.profileService.ListReferrals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ReferralResponseDTO, 0, len(referrals))
	for _, referral := range referrals {
		response = append(response, dto.ReferralResponseDTO{
			UserID:   referral.UserID,
			Earnings: referral.Earnings,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
