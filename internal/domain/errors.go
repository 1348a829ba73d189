package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInsufficientStock indicates a game does not have enough stock
	// to satisfy the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart indicates checkout was attempted on a missing or empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrValidation marks malformed input; wrap it with a field-level message.
	ErrValidation = errors.New("validation")
)
