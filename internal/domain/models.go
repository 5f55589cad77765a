package domain

import "time"

type User struct {
	ID              int64     `db:"id"`
	RefID           *int64    `db:"ref_id"`
	Balance         float64   `db:"balance"`
	DiscountPercent int       `db:"discount_percent"`
	CreatedAt       time.Time `db:"created_at"`
}

type Category struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	ParentID *int   `db:"parent_id"`
}

type Product struct {
	ID              int     `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	Price           float64 `db:"price"`
	CategoryID      int     `db:"category_id"`
	SubcategoryID   *int    `db:"subcategory_id"`
	DeliveryPayload string  `db:"delivery_payload"`
	MediaHandle     string  `db:"media_handle"`
}

type CartItem struct {
	UserID    int64 `db:"user_id"`
	ProductID int   `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

// CartLine is a cart row joined with the live product record.
type CartLine struct {
	ProductID       int
	Name            string
	Price           float64
	DeliveryPayload string
}

type Promocode struct {
	Code            string     `db:"code"`
	DiscountPercent int        `db:"discount_percent"`
	Expiration      *time.Time `db:"expiration"`
	MaxUses         *int       `db:"max_uses"`
	UsesCount       int        `db:"uses_count"`
}

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusSettled = "settled"
)

// Invoice is a local record of an external payment request. ProductID nil
// means the whole cart at settlement time. Amount is fixed at creation and
// never recomputed.
type Invoice struct {
	InvoiceID int64      `db:"invoice_id"`
	UserID    int64      `db:"user_id"`
	ProductID *int       `db:"product_id"`
	Amount    float64    `db:"amount"`
	Payload   string     `db:"payload"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	SettledAt *time.Time `db:"settled_at"`
}

const OrderStatusCompleted = "completed"

type Order struct {
	ID        int       `db:"id"`
	InvoiceID *int64    `db:"invoice_id"`
	UserID    int64     `db:"user_id"`
	ProductID int       `db:"product_id"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type Referral struct {
	UserID    int64   `db:"user_id"`
	RefUserID int64   `db:"ref_user_id"`
	Earnings  float64 `db:"earnings"`
}

type ReferralStats struct {
	Count    int
	Earnings float64
}
