package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// statusByError — таблица соответствия доменных ошибок HTTP-статусам.
// Неизвестная ошибка всегда превращается в 500 без утечки деталей.
var statusByError = []struct {
	err    error
	status int
}{
	{e.ErrStatusBadRequest, http.StatusBadRequest},
	{e.ErrExpectedMultipart, http.StatusBadRequest},
	{e.ErrMissingFields, http.StatusBadRequest},
	{e.ErrInvalidPrice, http.StatusBadRequest},
	{e.ErrPricePrecision, http.StatusBadRequest},
	{e.ErrStoreNameRequired, http.StatusBadRequest},
	{e.ErrStoreDescRequired, http.StatusBadRequest},
	{e.ErrInvalidWhatsAppPhone, http.StatusBadRequest},
	{e.ErrCurrencyRequired, http.StatusBadRequest},
	{e.ErrProductNameRequired, http.StatusBadRequest},
	{e.ErrPriceMustBePositive, http.StatusBadRequest},
	{e.ErrNoProducts, http.StatusBadRequest},
	{e.ErrProductImageRequired, http.StatusBadRequest},
	{e.ErrImageCountMismatch, http.StatusBadRequest},
	{e.ErrEmptyCart, http.StatusBadRequest},
	{e.ErrInvalidQuantity, http.StatusBadRequest},
	{e.ErrQuantityTooLarge, http.StatusBadRequest},
	{e.ErrWeakPassword, http.StatusBadRequest},
	{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{e.ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
	{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{e.ErrUnauthenticated, http.StatusUnauthorized},
	{e.ErrInvalidCredentials, http.StatusUnauthorized},
	{e.ErrSessionRevoked, http.StatusUnauthorized},
	{e.ErrNotOwner, http.StatusForbidden},
	{e.ErrStoreNotFound, http.StatusNotFound},
	{e.ErrProductNotFound, http.StatusNotFound},
	{e.ErrUserNotFound, http.StatusNotFound},
	{e.ErrEmailTaken, http.StatusConflict},
	{e.ErrSlugTaken, http.StatusConflict},
}

func ToHTTPResponse(err error) (int, string) {
	for _, entry := range statusByError {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents конвертирует строку вида "19.99" или "20" в минорные единицы.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return 0, e.ErrPriceMustBePositive
	}

	// Потолок в минорных единицах, чтобы произведение цены на количество
	// заведомо не переполняло int64
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.Mul(decimal.NewFromInt(100)).GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		// Срабатывание MaxBytesReader — ошибка клиента, не сервера
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrRequestTooLarge)
		}
		return err
	}

	return nil
}

// parseImageFile читает один файл из multipart-формы в usecase.ImageFile.
// Тип определяется по содержимому, заголовку клиента не доверяем.
func parseImageFile(fh *multipart.FileHeader, maxSize int64) (*usecase.ImageFile, error) {
	data, mimeType, err := readFile(fh, maxSize)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(mimeType, "image/") {
		return nil, e.Wrap(fh.Filename, e.ErrUnsupportedMediaType)
	}

	return usecase.NewImageFile(data, mimeType, int64(len(data)), fh.Filename), nil
}

// optionalImageFile возвращает nil, если файл с именем field не был передан.
func optionalImageFile(r *http.Request, field string, maxSize int64) (*usecase.ImageFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	return parseImageFile(files[0], maxSize)
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}

// formValuePtr различает отсутствующее поле формы и переданное значение.
// Для PATCH-запросов nil означает "не менять".
func formValuePtr(r *http.Request, field string) *string {
	if r.MultipartForm == nil {
		return nil
	}

	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}
