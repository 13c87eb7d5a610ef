package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

const (
	maxTotalRequestSize = 150 << 20
	maxFormMemory       = 32 << 20
)

type StoreHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
	maxFileSize  int64
}

func NewStoreHandler(storeUsecase usecase.StoreUC, logger logger.Logger, maxFileSize int64) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase, logger: logger, maxFileSize: maxFileSize}
}

// createStore
//
//	@Summary		Создание магазина с начальным каталогом
//	@Description	Принимает multipart: JSON-часть "payload" с данными магазина и товаров,
//	@Description	опциональный файл "logo" и файлы "product_images" по одному на товар.
//	@Tags			stores
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			payload			formData	string	true	"JSON с магазином и товарами"
//	@Param			logo			formData	file	false	"Логотип магазина"
//	@Param			product_images	formData	file	true	"Изображения товаров по порядку"
//	@Success		201				{object}	CreateStoreResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		401				{object}	ErrorResponse
//	@Router			/stores [post]
func (s *StoreHandler) createStore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxFormMemory); err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := s.parseCreateStoreForm(r)
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := s.storeUsecase.CreateStore(r.Context(), req)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &CreateStoreResponse{
		Store:     newStoreResponse(res.Store),
		PublicURL: res.PublicURL,
	})
}

// getStorefront
//
//	@Summary		Публичная витрина магазина
//	@Description	Доступна без аутентификации; is_owner вычисляется по токену, если он передан.
//	@Tags			stores
//	@Produce		json
//	@Param			slug	path		string	true	"Slug магазина"
//	@Success		200		{object}	StorefrontResponse
//	@Failure		404		{object}	ErrorResponse	"Магазин не найден"
//	@Router			/storefronts/{slug} [get]
func (s *StoreHandler) getStorefront(w http.ResponseWriter, r *http.Request) {
	var actorID uuid.UUID
	if identity := identityFromCtx(r.Context()); identity != nil {
		actorID = identity.UserID
	}

	res, err := s.storeUsecase.GetStorefront(r.Context(), &usecase.GetStorefrontReq{
		Slug:    chi.URLParam(r, "slug"),
		ActorID: actorID,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newStorefrontResponse(res))
}

// updateStore
//
//	@Summary		Частичное обновление магазина
//	@Description	Переданные поля формы меняются, отсутствующие остаются прежними.
//	@Description	Slug и владелец неизменяемы.
//	@Tags			stores
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id				path		string	true	"ID магазина"
//	@Param			name			formData	string	false	"Название"
//	@Param			description		formData	string	false	"Описание"
//	@Param			whatsapp_number	formData	string	false	"Номер WhatsApp"
//	@Param			currency		formData	string	false	"Валюта"
//	@Param			logo			formData	file	false	"Новый логотип"
//	@Success		200				{object}	StoreResponse
//	@Failure		403				{object}	ErrorResponse	"Магазин принадлежит другому продавцу"
//	@Failure		404				{object}	ErrorResponse
//	@Router			/stores/{id} [patch]
func (s *StoreHandler) updateStore(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	storeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, e.ErrStoreNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxFormMemory); err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	logo, err := optionalImageFile(r, "logo", s.maxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	store, err := s.storeUsecase.UpdateStore(r.Context(), &usecase.UpdateStoreReq{
		ActorID:        identity.UserID,
		StoreID:        storeID,
		Name:           formValuePtr(r, "name"),
		Description:    formValuePtr(r, "description"),
		WhatsAppNumber: formValuePtr(r, "whatsapp_number"),
		Currency:       formValuePtr(r, "currency"),
		Logo:           logo,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newStoreResponse(store))
}

// parseCreateStoreForm собирает запрос создания магазина из multipart-формы.
// Изображения товаров сопоставляются с товарами по позиции.
func (s *StoreHandler) parseCreateStoreForm(r *http.Request) (*usecase.CreateStoreReq, error) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		return nil, e.ErrUnauthenticated
	}

	payloadStr := r.FormValue("payload")
	if payloadStr == "" {
		return nil, e.ErrMissingFields
	}

	var payload createStorePayload
	if err := json.Unmarshal([]byte(payloadStr), &payload); err != nil {
		return nil, e.ErrStatusBadRequest
	}

	imageFiles := r.MultipartForm.File["product_images"]
	if len(imageFiles) != len(payload.Products) {
		return nil, e.ErrImageCountMismatch
	}

	products := make([]usecase.ProductEntry, 0, len(payload.Products))
	for i, entry := range payload.Products {
		price, err := parsePriceToCents(entry.Price)
		if err != nil {
			return nil, err
		}

		image, err := parseImageFile(imageFiles[i], s.maxFileSize)
		if err != nil {
			return nil, err
		}

		products = append(products, usecase.ProductEntry{
			Name:        entry.Name,
			Description: entry.Description,
			Price:       price,
			Image:       image,
		})
	}

	logo, err := optionalImageFile(r, "logo", s.maxFileSize)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateStoreReq{
		CreatorID: identity.UserID,
		Details: usecase.StoreDetails{
			Name:           payload.Store.Name,
			Description:    payload.Store.Description,
			WhatsAppNumber: payload.Store.WhatsAppNumber,
			Currency:       payload.Store.Currency,
			Logo:           logo,
		},
		Products: products,
	}, nil
}
