package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must be a positive number")
	ErrNameRequired    = errors.New("product name is required")
	ErrProductInUse    = errors.New("product is referenced by existing orders")
)
