package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
	maxFileSize    int64
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger, maxFileSize int64) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger, maxFileSize: maxFileSize}
}

// addProduct
//
//	@Summary	Добавление товара в существующий магазин
//	@Tags		products
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id			path		string	true	"ID магазина"
//	@Param		name		formData	string	true	"Название товара"
//	@Param		description	formData	string	false	"Описание"
//	@Param		price		formData	string	true	"Цена в основных единицах, например 19.99"
//	@Param		image		formData	file	false	"Изображение товара"
//	@Success	201			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	403			{object}	ErrorResponse	"Магазин принадлежит другому продавцу"
//	@Router		/stores/{id}/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
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
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(r.FormValue("price"))
	if err != nil {
		WriteError(w, err)
		return
	}

	image, err := optionalImageFile(r, "image", p.maxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		ActorID: identity.UserID,
		StoreID: storeID,
		Entry: usecase.ProductEntry{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Price:       price,
			Image:       image,
		},
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление товара
//	@Description	Переданные поля меняются, отсутствующие остаются прежними.
//	@Description	Без нового файла image существующее изображение сохраняется.
//	@Tags			products
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string	true	"ID товара"
//	@Param			name		formData	string	false	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Param			price		formData	string	false	"Цена в основных единицах"
//	@Param			image		formData	file	false	"Новое изображение"
//	@Success		200			{object}	ProductResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxFormMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	var price *int64
	if priceStr := formValuePtr(r, "price"); priceStr != nil {
		cents, err := parsePriceToCents(*priceStr)
		if err != nil {
			WriteError(w, err)
			return
		}
		price = &cents
	}

	image, err := optionalImageFile(r, "image", p.maxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ActorID:     identity.UserID,
		ProductID:   productID,
		Name:        formValuePtr(r, "name"),
		Description: formValuePtr(r, "description"),
		Price:       price,
		Image:       image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID товара"
//	@Success	204	"Товар удалён"
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), &usecase.DeleteProductReq{
		ActorID:   identity.UserID,
		ProductID: productID,
	}); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
