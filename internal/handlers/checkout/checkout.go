package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teleshop/internal/dto"
	"teleshop/internal/gateway/cryptopay"
	"teleshop/internal/service/checkoutservice"
	"teleshop/internal/service/settlementservice"
	"teleshop/pkg/utils"
)

type CheckoutService interface {
	BuyProduct(ctx context.Context, userID int64, productID int) (*checkoutservice.Checkout, error)
	PayCart(ctx context.Context, userID int64) (*checkoutservice.Checkout, error)
}

type SettlementService interface {
	Settle(ctx context.Context, invoiceID int64) (*settlementservice.Settlement, error)
}

type CheckoutHandler struct {
	checkoutService   CheckoutService
	settlementService SettlementService
}

func New(checkoutService CheckoutService, settlementService SettlementService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService:   checkoutService,
		settlementService: settlementService,
	}
}

// Checkout godoc
//
//	@Summary		Start a purchase
//	@Description	Opens a payment invoice for a single product, or for the whole cart when product_id is omitted. A zero-priced purchase is delivered immediately without an invoice.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Purchase intent"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"User or product not found"
//	@Failure		409		{object}	utils.Response	"Cart is empty"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Router			/api/users/{userID}/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var checkout *checkoutservice.Checkout
	if req.ProductID != nil {
		checkout, err = h.checkoutService.BuyProduct(r.Context(), userID, *req.ProductID)
	} else {
		checkout, err = h.checkoutService.PayCart(r.Context(), userID)
	}
	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrUserNotFound), errors.Is(err, checkoutservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, checkoutservice.ErrCartEmpty):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, cryptopay.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.CheckoutResponseDTO{Amount: checkout.Amount}
	if checkout.InvoiceID != 0 {
		response.Status = "pending"
		response.InvoiceID = checkout.InvoiceID
		response.PayURL = checkout.PayURL
	} else {
		response.Status = "completed"
		response.Items = make([]dto.DeliveredItemDTO, 0, len(checkout.Delivered))
		for _, item := range checkout.Delivered {
			response.Items = append(response.Items, dto.DeliveredItemDTO{
				ProductName:     item.ProductName,
				DeliveryPayload: item.DeliveryPayload,
				Amount:          item.Amount,
			})
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Settle godoc
//
//	@Summary		Settle an invoice
//	@Description	Confirms payment with the gateway and converts it into completed orders, referral credit and delivery payloads. Safe to call repeatedly: an already settled invoice replays its recorded result, an unpaid one reports pending.
//	@Tags			Checkout
//	@Produce		json
//	@Param			invoiceID	path		int	true	"Invoice ID"
//	@Success		200			{object}	dto.SettleResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid invoice id"
//	@Failure		404			{object}	utils.Response	"Invoice not found"
//	@Failure		502			{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{invoiceID}/settle [post]
func (h *CheckoutHandler) Settle(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.ParseInt(chi.URLParam(r, "invoiceID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	settlement, err := h.settlementService.Settle(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrNotYetPaid):
			utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{Status: "pending"})
		case errors.Is(err, settlementservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cryptopay.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	status := "settled"
	if settlement.Replayed {
		status = "replayed"
	}
	response := dto.SettleResponseDTO{
		Status:         status,
		Total:          settlement.Total,
		ReferrerCredit: settlement.ReferrerCredit,
		Items:          make([]dto.DeliveredItemDTO, 0, len(settlement.Items)),
	}
	for _, item := range settlement.Items {
		response.Items = append(response.Items, dto.DeliveredItemDTO{
			ProductName:     item.ProductName,
			DeliveryPayload: item.DeliveryPayload,
			Amount:          item.Amount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
