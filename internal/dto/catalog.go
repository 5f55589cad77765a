package dto

type ProductResponseDTO struct {
	ID            int     `json:"id" example:"1"`
	Name          string  `json:"name" example:"TrafficGen"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" example:"45"`
	CategoryID    int     `json:"category_id" example:"2"`
	SubcategoryID *int    `json:"subcategory_id,omitempty"`
	MediaHandle   string  `json:"media_handle,omitempty"`
}

type CategoryResponseDTO struct {
	ID       int    `json:"id" example:"2"`
	Name     string `json:"name" example:"Software"`
	ParentID *int   `json:"parent_id,omitempty"`
}

type CreateProductRequestDTO struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" example:"45"`
	CategoryID      int     `json:"category_id" validate:"required"`
	SubcategoryID   *int    `json:"subcategory_id"`
	DeliveryPayload string  `json:"delivery_payload"`
	MediaHandle     string  `json:"media_handle"`
}

type UpdateProductRequestDTO struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DeliveryPayload *string  `json:"delivery_payload"`
	MediaHandle     *string  `json:"media_handle"`
}

type CreateCategoryRequestDTO struct {
	Name     string `json:"name" validate:"required"`
	ParentID *int   `json:"parent_id"`
}
