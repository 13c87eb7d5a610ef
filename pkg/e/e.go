package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStoreNameRequired    = fmt.Errorf("store name is required")
	ErrStoreDescRequired    = fmt.Errorf("store description is required")
	ErrInvalidWhatsAppPhone = fmt.Errorf("whatsapp number must contain a country code and 2-15 digits")
	ErrCurrencyRequired     = fmt.Errorf("currency is required")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrNoProducts           = fmt.Errorf("at least one product is required")
	ErrProductImageRequired = fmt.Errorf("product image is required")
	ErrImageCountMismatch   = fmt.Errorf("product image count does not match product count")
	ErrFileTooLarge         = fmt.Errorf("file exceeds the 5MB limit")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrQuantityTooLarge     = fmt.Errorf("quantity must not exceed 1000000")
	ErrRequestTooLarge      = fmt.Errorf("request body is too large")

	// 401 / 403
	ErrUnauthenticated    = fmt.Errorf("authentication required")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrWeakPassword       = fmt.Errorf("password must be at least 8 characters")
	ErrSessionRevoked     = fmt.Errorf("session has been revoked")
	ErrNotOwner           = fmt.Errorf("only the store creator may modify it")

	// 404
	ErrStoreNotFound   = fmt.Errorf("store not found")
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrUserNotFound    = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailTaken = fmt.Errorf("email is already registered")
	ErrSlugTaken  = fmt.Errorf("store slug is already taken")

	// 500
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
