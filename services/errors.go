package services

import "errors"

var (
	ErrInvalidDuration     = errors.New("duration is not one of the allowed values")
	ErrInvalidDirection    = errors.New("direction must be Buy Up or Buy Down")
	ErrBelowMinimum        = errors.New("amount is below the minimum order amount")
	ErrInsufficientBalance = errors.New("insufficient available balance")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user is inactive")
	ErrOrderNotFound       = errors.New("order not found")
	// ErrOrderNotActive means the order already reached a terminal state.
	// Expiration triggers treat it as a benign no-op.
	ErrOrderNotActive = errors.New("order is not active")
)
