package dto

type RegisterUserRequestDTO struct {
	ID    int64  `json:"id" validate:"required"`
	RefID *int64 `json:"ref_id"`
}

type ProfileResponseDTO struct {
	ID              int64   `json:"id" example:"42"`
	Balance         float64 `json:"balance" example:"12.5"`
	DiscountPercent int     `json:"discount_percent" example:"25"`
	PurchasesCount  int     `json:"purchases_count" example:"3"`
	ReferralsCount  int     `json:"referrals_count" example:"2"`
	Earnings        float64 `json:"earnings" example:"4.5"`
}

type ReferralResponseDTO struct {
	UserID   int64   `json:"user_id" example:"43"`
	Earnings float64 `json:"earnings" example:"4.5"`
}
