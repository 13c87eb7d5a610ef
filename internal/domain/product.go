package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product описывает товар магазина.
// Товар не существует без родительского магазина.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Name        string
	Description string
	Price       int64 // Цена хранится в минорных единицах (центах)
	ImageURL    *string
	CreatedAt   time.Time
}

func NewProduct(storeID uuid.UUID, name, description string, price int64, imageURL *string) *Product {
	return &Product{
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}
