package dto

type CheckoutRequestDTO struct {
	// ProductID buys a single product; omitted means "pay the whole cart".
	ProductID *int `json:"product_id"`
}

type DeliveredItemDTO struct {
	ProductName     string  `json:"product_name" example:"TrafficGen"`
	DeliveryPayload string  `json:"delivery_payload" example:"traffic_gen.zip"`
	Amount          float64 `json:"amount" example:"45"`
}

type CheckoutResponseDTO struct {
	Status    string             `json:"status" example:"pending"`
	InvoiceID int64              `json:"invoice_id,omitempty" example:"528412"`
	PayURL    string             `json:"pay_url,omitempty"`
	Amount    float64            `json:"amount" example:"45"`
	Items     []DeliveredItemDTO `json:"items,omitempty"`
}

type SettleResponseDTO struct {
	Status         string             `json:"status" example:"settled"`
	Items          []DeliveredItemDTO `json:"items,omitempty"`
	Total          float64            `json:"total" example:"45"`
	ReferrerCredit float64            `json:"referrer_credit,omitempty" example:"4.5"`
}
