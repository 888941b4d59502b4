package service

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation failed")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrQuantityInvalid       = errors.New("quantity must be > 0")
	ErrVariantUnavailable    = errors.New("variant is not available")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyProcessed = errors.New("order has already been processed")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrAddressInvalid        = errors.New("invalid shipping address")
	ErrDuplicateSlug         = errors.New("product with this slug already exists")
	ErrEmailTaken            = errors.New("email is already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
)
