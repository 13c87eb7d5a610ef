package usecase

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderTestStore() *domain.Store {
	return &domain.Store{
		ID:             uuid.New(),
		Slug:           "amaka-accessories-x1y2z",
		Name:           "Amaka Accessories",
		WhatsAppNumber: "2348012345678",
		Currency:       "$",
		CreatorID:      uuid.New(),
	}
}

func newOrderUCWithStore(store *domain.Store) *OrderUseCase {
	repo := &storeRepoMock{
		getBySlug: func(ctx context.Context, slug string) (*domain.Store, error) {
			if slug == store.Slug {
				return store, nil
			}
			return nil, e.ErrStoreNotFound
		},
	}

	return NewOrderUC(repo, nopLogger{})
}

func TestBuildOrderLink_Cart(t *testing.T) {
	store := orderTestStore()
	uc := newOrderUCWithStore(store)

	res, err := uc.BuildOrderLink(context.Background(), &OrderLinkReq{
		Slug: store.Slug,
		Lines: []domain.CartLine{
			{Name: "Widget", Price: 1000, Quantity: 2},
			{Name: "Gadget", Price: 1999, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Len(t, res.OrderRef, orderRefLen)
	assert.Equal(t, strings.ToUpper(res.OrderRef), res.OrderRef)

	assert.Contains(t, res.Message, "Hello *Amaka Accessories*, I'd like to place an order:")
	assert.Contains(t, res.Message, "• Widget x2 ($20)\n")
	assert.Contains(t, res.Message, "• Gadget x1 ($19.99)\n")
	assert.Contains(t, res.Message, "*Total: $39.99*")
	assert.Contains(t, res.Message, "Order Ref: "+res.OrderRef)

	// Ссылка должна декодироваться ровно в то же сообщение
	parsed, err := url.Parse(res.URL)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/2348012345678", parsed.Path)
	assert.Equal(t, res.Message, parsed.Query().Get("text"))
}

func TestBuildOrderLink_SingleProduct(t *testing.T) {
	store := orderTestStore()
	uc := newOrderUCWithStore(store)

	res, err := uc.BuildOrderLink(context.Background(), &OrderLinkReq{
		Slug:          store.Slug,
		Lines:         []domain.CartLine{{Name: "Widget", Price: 2000, Quantity: 1}},
		SingleProduct: true,
	})
	require.NoError(t, err)

	assert.Empty(t, res.OrderRef)
	assert.Equal(t, `Hi! I'm interested in buying "Widget" ($20) from Amaka Accessories. Is it available?`, res.Message)
}

func TestBuildOrderLink_Validation(t *testing.T) {
	store := orderTestStore()
	uc := newOrderUCWithStore(store)

	cases := []struct {
		name     string
		req      *OrderLinkReq
		expected error
	}{
		{
			name:     "empty cart",
			req:      &OrderLinkReq{Slug: store.Slug},
			expected: e.ErrEmptyCart,
		},
		{
			name: "blank product name",
			req: &OrderLinkReq{
				Slug:  store.Slug,
				Lines: []domain.CartLine{{Name: "  ", Price: 100, Quantity: 1}},
			},
			expected: e.ErrProductNameRequired,
		},
		{
			name: "non-positive price",
			req: &OrderLinkReq{
				Slug:  store.Slug,
				Lines: []domain.CartLine{{Name: "Widget", Price: 0, Quantity: 1}},
			},
			expected: e.ErrPriceMustBePositive,
		},
		{
			name: "zero quantity",
			req: &OrderLinkReq{
				Slug:  store.Slug,
				Lines: []domain.CartLine{{Name: "Widget", Price: 100, Quantity: 0}},
			},
			expected: e.ErrInvalidQuantity,
		},
		{
			name: "quantity above cap",
			req: &OrderLinkReq{
				Slug:  store.Slug,
				Lines: []domain.CartLine{{Name: "Widget", Price: 100, Quantity: maxOrderQuantity + 1}},
			},
			expected: e.ErrQuantityTooLarge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.BuildOrderLink(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestBuildOrderLink_StoreNotFound(t *testing.T) {
	uc := newOrderUCWithStore(orderTestStore())

	_, err := uc.BuildOrderLink(context.Background(), &OrderLinkReq{
		Slug:  "missing-shop-00000",
		Lines: []domain.CartLine{{Name: "Widget", Price: 100, Quantity: 1}},
	})
	assert.ErrorIs(t, err, e.ErrStoreNotFound)
}

func TestBuildOrderLink_HugeQuantityDoesNotWrapTotal(t *testing.T) {
	store := orderTestStore()
	uc := newOrderUCWithStore(store)

	// Количества, при которых price*quantity переполнило бы int64, отклоняются
	_, err := uc.BuildOrderLink(context.Background(), &OrderLinkReq{
		Slug:  store.Slug,
		Lines: []domain.CartLine{{Name: "Widget", Price: 10_000_000_000, Quantity: 2_000_000_000}},
	})
	assert.ErrorIs(t, err, e.ErrQuantityTooLarge)

	// На границе допустимого сумма остаётся корректной и неотрицательной
	res, err := uc.BuildOrderLink(context.Background(), &OrderLinkReq{
		Slug:  store.Slug,
		Lines: []domain.CartLine{{Name: "Widget", Price: 10_000_000_000, Quantity: maxOrderQuantity}},
	})
	require.NoError(t, err)

	assert.NotContains(t, res.Message, "-")
	assert.Contains(t, res.Message, "*Total: $"+MoneyString(10_000_000_000*int64(maxOrderQuantity))+"*")
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{2000, "20"},
		{1999, "19.99"},
		{50, "0.5"},
		{1, "0.01"},
		{100000, "1000"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, MoneyString(tc.cents))
	}
}
