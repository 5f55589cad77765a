package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"teleshop/internal/dto"
	pkgauth "teleshop/pkg/auth"
	"teleshop/pkg/utils"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	adminPasswordHash string
	hashService       pkgauth.HashServiceInterface
	jwtService        pkgauth.JWTServiceInterface
}

func New(adminPasswordHash string, hashService pkgauth.HashServiceInterface, jwtService pkgauth.JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		adminPasswordHash: adminPasswordHash,
		hashService:       hashService,
		jwtService:        jwtService,
	}
}

// Login godoc
//
//	@Summary		Authenticate as administrator
//	@Description	Exchange the admin password for a bearer token carrying the admin role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.adminPasswordHash == "" || !h.hashService.ComparePassword(h.adminPasswordHash, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateJWT(pkgauth.RoleAdmin, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}
