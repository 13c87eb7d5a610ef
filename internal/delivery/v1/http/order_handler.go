package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// buildOrderLink
//
//	@Summary		Сборка wa.me-ссылки для заказа
//	@Description	Превращает корзину покупателя в ссылку на чат WhatsApp продавца.
//	@Description	Состав корзины на сервере не сохраняется.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string				true	"Slug магазина"
//	@Param			body	body		orderLinkRequest	true	"Позиции корзины"
//	@Success		200		{object}	OrderLinkResponse
//	@Failure		400		{object}	ErrorResponse	"Пустая корзина или неверные позиции"
//	@Failure		404		{object}	ErrorResponse	"Магазин не найден"
//	@Router			/storefronts/{slug}/order-link [post]
func (o *OrderHandler) buildOrderLink(w http.ResponseWriter, r *http.Request) {
	var req orderLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := parsePriceToCents(item.Price)
		if err != nil {
			WriteError(w, err)
			return
		}

		lines = append(lines, domain.CartLine{
			Name:     item.Name,
			Price:    price,
			Quantity: item.Quantity,
		})
	}

	res, err := o.orderUsecase.BuildOrderLink(r.Context(), &usecase.OrderLinkReq{
		Slug:          chi.URLParam(r, "slug"),
		Lines:         lines,
		SingleProduct: req.SingleProduct,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &OrderLinkResponse{
		URL:      res.URL,
		Message:  res.Message,
		OrderRef: res.OrderRef,
	})
}
