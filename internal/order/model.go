package order

import (
	"time"

	"cantina-be/internal/product"
	"cantina-be/internal/user"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPreparing Status = "PREPARING"
	StatusReady     Status = "READY"
)

// Valid reports whether s is one of the three lifecycle states.
// Transitions between them are deliberately unrestricted so staff can
// correct a mis-advanced order.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady:
		return true
	}
	return false
}

type Order struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	UserID    int64           `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []Item          `json:"items"`
	User      *user.User      `json:"user,omitempty"`
}

type Item struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Product   product.Product `json:"product"`
}

// RequestedItem is one line of an incoming order request.
type RequestedItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PlacementResult pairs the created order with the caller's post-debit balance.
type PlacementResult struct {
	Order      *Order
	NewBalance decimal.Decimal
}
