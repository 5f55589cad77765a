package cryptopay

//go:generate mockgen -source=cryptopay.go -destination=mocks.go -package=cryptopay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"teleshop/internal/config"
	"teleshop/pkg/clients"
)

// ErrUnavailable covers transport failures, non-2xx responses and malformed
// bodies. It is always distinct from a definitive "unpaid" answer and must
// never be read as "paid".
var ErrUnavailable = errors.New("payment gateway unavailable")

type Status string

const (
	StatusPaid   Status = "paid"
	StatusUnpaid Status = "unpaid"
)

type invoiceResult struct {
	InvoiceID int64  `json:"invoice_id"`
	Status    string `json:"status"`
	PayURL    string `json:"pay_url"`
}

type createInvoiceResponse struct {
	OK     bool          `json:"ok"`
	Result invoiceResult `json:"result"`
}

type getInvoicesResponse struct {
	OK     bool            `json:"ok"`
	Result []invoiceResult `json:"result"`
}

type Client struct {
	url      string
	token    string
	asset    string
	currency string
	client   clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:      cfg.CryptoPayAddress,
		token:    cfg.CryptoPayToken,
		asset:    cfg.CryptoPayAsset,
		currency: cfg.Currency,
		client:   client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Crypto-Pay-API-Token", c.token)
	return h
}

// CreateInvoice asks the gateway for a new invoice and returns its id and
// pay link. The amount is final; the gateway never recomputes it.
func (c *Client) CreateInvoice(ctx context.Context, amount float64, description, payload string) (int64, string, error) {
	body, err := json.Marshal(map[string]any{
		"amount":         strconv.FormatFloat(amount, 'f', -1, 64),
		"currency":       c.currency,
		"asset":          c.asset,
		"description":    description,
		"payload":        payload,
		"allowed_assets": []string{c.asset},
	})
	if err != nil {
		return 0, "", fmt.Errorf("can't marshal invoice request: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(c.url+"/api/createInvoice", c.headers(), body)
	if err != nil {
		zap.L().Error("createInvoice request failed", zap.Error(err))
		return 0, "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("createInvoice unexpected status", zap.Int("status", statusCode))
		return 0, "", fmt.Errorf("%w: status %d", ErrUnavailable, statusCode)
	}

	var resp createInvoiceResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Error("createInvoice malformed body", zap.Error(err))
		return 0, "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.OK {
		zap.L().Error("createInvoice rejected", zap.ByteString("body", respBody))
		return 0, "", fmt.Errorf("%w: gateway returned not ok", ErrUnavailable)
	}

	return resp.Result.InvoiceID, resp.Result.PayURL, nil
}

// InvoiceStatus is side-effect-free on the gateway side and safe to poll
// repeatedly.
func (c *Client) InvoiceStatus(ctx context.Context, invoiceID int64) (Status, error) {
	url := fmt.Sprintf("%s/api/getInvoices?invoice_ids=%d", c.url, invoiceID)
	statusCode, respBody, _, err := c.client.Get(url, c.headers())
	if err != nil {
		zap.L().Error("getInvoices request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("getInvoices unexpected status", zap.Int("status", statusCode))
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, statusCode)
	}

	var resp getInvoicesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Error("getInvoices malformed body", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.OK || len(resp.Result) == 0 {
		return "", fmt.Errorf("%w: invoice %d not in gateway response", ErrUnavailable, invoiceID)
	}

	if resp.Result[0].Status == string(StatusPaid) {
		return StatusPaid, nil
	}
	return StatusUnpaid, nil
}
