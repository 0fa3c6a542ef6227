package order

import "errors"

var (
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be a positive integer")
	ErrUnknownProduct      = errors.New("order references a product that does not exist")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNotOrderOwner       = errors.New("order belongs to another user")
	ErrInvalidStatus       = errors.New("invalid order status")
)
