package dto

type AddCartRequestDTO struct {
	ProductID int `json:"product_id" validate:"required"`
}

type CartLineDTO struct {
	ProductID  int     `json:"product_id" example:"1"`
	Name       string  `json:"name" example:"TrafficGen"`
	Price      float64 `json:"price" example:"60"`
	FinalPrice float64 `json:"final_price" example:"45"`
}

type CartResponseDTO struct {
	Items []CartLineDTO `json:"items"`
	Total float64       `json:"total" example:"45"`
}
