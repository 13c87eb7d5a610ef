package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store описывает магазин продавца.
type Store struct {
	ID             uuid.UUID
	Slug           string // публичный ключ поиска, неизменяем после создания
	Name           string
	Description    string
	WhatsAppNumber string // только цифры с кодом страны, без '+' и пробелов
	Currency       string // символ или код валюты, хранится как непрозрачный текст
	LogoURL        *string
	CreatorID      uuid.UUID // неизменяем после создания
	CreatedAt      time.Time
}

func NewStore(slug, name, description, whatsappNumber, currency string, logoURL *string, creatorID uuid.UUID) *Store {
	return &Store{
		Slug:           slug,
		Name:           name,
		Description:    description,
		WhatsAppNumber: whatsappNumber,
		Currency:       currency,
		LogoURL:        logoURL,
		CreatorID:      creatorID,
	}
}

// IsOwnedBy — единственное основание прав на мутации магазина и его товаров.
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.CreatorID == userID
}
