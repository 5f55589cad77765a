package dto

import "time"

type RedeemPromoRequestDTO struct {
	Code string `json:"code" validate:"required"`
}

type RedeemPromoResponseDTO struct {
	DiscountPercent int `json:"discount_percent" example:"25"`
}

type CreatePromoRequestDTO struct {
	Code            string     `json:"code" validate:"required"`
	DiscountPercent int        `json:"discount_percent" example:"25"`
	Expiration      *time.Time `json:"expiration"`
	MaxUses         *int       `json:"max_uses"`
}

type PromoResponseDTO struct {
	Code            string     `json:"code" example:"SPRING25"`
	DiscountPercent int        `json:"discount_percent" example:"25"`
	Expiration      *time.Time `json:"expiration,omitempty"`
	MaxUses         *int       `json:"max_uses,omitempty"`
	UsesCount       int        `json:"uses_count" example:"3"`
}
