package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateParams carries the admin-supplied fields for a new product.
type CreateParams struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
}
