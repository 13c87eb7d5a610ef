package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected int64
		wantErr  error
	}{
		{name: "whole units", input: "20", expected: 2000},
		{name: "two decimals", input: "19.99", expected: 1999},
		{name: "one decimal", input: "0.5", expected: 50},
		{name: "smallest price", input: "0.01", expected: 1},
		{name: "surrounding spaces rejected", input: " 12.50 ", wantErr: e.ErrInvalidPrice},
		{name: "empty", input: "", wantErr: e.ErrInvalidPrice},
		{name: "garbage", input: "abc", wantErr: e.ErrInvalidPrice},
		{name: "zero", input: "0", wantErr: e.ErrPriceMustBePositive},
		{name: "negative", input: "-5", wantErr: e.ErrPriceMustBePositive},
		{name: "three decimals", input: "1.999", wantErr: e.ErrPricePrecision},
		{name: "above ceiling", input: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToCents(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{e.ErrStoreNotFound, http.StatusNotFound},
		{e.ErrNotOwner, http.StatusForbidden},
		{e.ErrUnauthenticated, http.StatusUnauthorized},
		{e.ErrEmailTaken, http.StatusConflict},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrEmptyCart, http.StatusBadRequest},
	}

	for _, tc := range cases {
		status, msg := ToHTTPResponse(e.Wrap("SomeHandler.someOp", tc.err))
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.err.Error(), msg)
	}

	// Неизвестная ошибка не должна утекать наружу
	status, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

// multipartRequest собирает multipart-запрос с одним файловым полем.
func multipartRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

func TestEnsureMultipartForm_BodyOverLimit(t *testing.T) {
	r := multipartRequest(t, "logo", "logo.png", bytes.Repeat(pngHeader, 64))
	r.Body = http.MaxBytesReader(httptest.NewRecorder(), r.Body, 16)

	err := ensureMultipartForm(r, maxFormMemory)
	require.ErrorIs(t, err, e.ErrRequestTooLarge)

	status, _ := ToHTTPResponse(err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestParseImageFile_SizeLimit(t *testing.T) {
	r := multipartRequest(t, "image", "photo.png", bytes.Repeat(pngHeader, 8))
	require.NoError(t, ensureMultipartForm(r, maxFormMemory))

	fh := r.MultipartForm.File["image"][0]

	_, err := parseImageFile(fh, 16)
	assert.ErrorIs(t, err, e.ErrFileTooLarge)

	file, err := parseImageFile(fh, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.MimeType)
	assert.Equal(t, int64(len(pngHeader)*8), file.Size)
}
