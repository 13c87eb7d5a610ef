package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

const (
	orderRefLen = 8

	// Потолок количества: вместе с потолком цены гарантирует,
	// что сумма заказа не переполняет int64
	maxOrderQuantity = 1_000_000
)

// OrderUseCase превращает корзину покупателя в wa.me-ссылку.
// Сервер ничего не сохраняет: заказ живёт дальше в переписке WhatsApp,
// Order Ref нужен только как человекочитаемая метка диалога.
type OrderUseCase struct {
	storeRepo StoreRepository
	logger    logger.Logger
}

func NewOrderUC(storeRepo StoreRepository, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// BuildOrderLink собирает текст заказа и ссылку wa.me для магазина по slug.
// Номер WhatsApp берётся из магазина на момент запроса, не из клиента.
func (o *OrderUseCase) BuildOrderLink(ctx context.Context, req *OrderLinkReq) (*OrderLinkRes, error) {
	const op = "OrderUseCase.BuildOrderLink"

	if len(req.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	for _, line := range req.Lines {
		if strings.TrimSpace(line.Name) == "" {
			return nil, e.Wrap(op, e.ErrProductNameRequired)
		}
		if line.Price <= 0 {
			return nil, e.Wrap(op, e.ErrPriceMustBePositive)
		}
		if line.Quantity <= 0 {
			return nil, e.Wrap(op, e.ErrInvalidQuantity)
		}
		if line.Quantity > maxOrderQuantity {
			return nil, e.Wrap(op, e.ErrQuantityTooLarge)
		}
	}

	store, err := o.storeRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var message, orderRef string
	if req.SingleProduct {
		message = BuildBuyMessage(store.Name, store.Currency, req.Lines[0])
	} else {
		orderRef = strings.ToUpper(randToken(orderRefLen))
		message = BuildCartMessage(store.Name, store.Currency, req.Lines, orderRef)
	}

	return &OrderLinkRes{
		URL:      BuildWhatsAppLink(store.WhatsAppNumber, message),
		Message:  message,
		OrderRef: orderRef,
	}, nil
}

// BuildCartMessage форматирует многострочное сообщение заказа.
func BuildCartMessage(storeName, currency string, lines []domain.CartLine, orderRef string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello *%s*, I'd like to place an order:\n\n", storeName)

	var total int64
	for _, line := range lines {
		lineTotal := line.Price * int64(line.Quantity)
		total += lineTotal
		fmt.Fprintf(&b, "• %s x%d (%s%s)\n", line.Name, line.Quantity, currency, MoneyString(lineTotal))
	}

	fmt.Fprintf(&b, "\n*Total: %s%s*\n\nOrder Ref: %s", currency, MoneyString(total), orderRef)

	return b.String()
}

// BuildBuyMessage форматирует запрос о покупке одного товара.
func BuildBuyMessage(storeName, currency string, line domain.CartLine) string {
	return fmt.Sprintf(
		"Hi! I'm interested in buying \"%s\" (%s%s) from %s. Is it available?",
		line.Name, currency, MoneyString(line.Price), storeName,
	)
}

// BuildWhatsAppLink строит ссылку wa.me с url-кодированным текстом.
func BuildWhatsAppLink(phoneDigits, message string) string {
	query := url.Values{}
	query.Set("text", message)

	return "https://wa.me/" + phoneDigits + "?" + query.Encode()
}

// MoneyString печатает цену из минорных единиц без лишних нулей:
// 2000 -> "20", 1999 -> "19.99".
func MoneyString(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).String()
}
