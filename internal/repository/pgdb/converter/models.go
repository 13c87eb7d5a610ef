package converter

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel представляет запись таблицы stores в PostgreSQL.
type StoreModel struct {
	ID             uuid.UUID `db:"id"`
	Slug           string    `db:"slug"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	WhatsAppNumber string    `db:"whatsapp_number"`
	Currency       string    `db:"currency"`
	LogoURL        *string   `db:"logo_url"`
	CreatorID      uuid.UUID `db:"creator_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          uuid.UUID `db:"id"`
	StoreID     uuid.UUID `db:"store_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	ImageURL    *string   `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	StoreID     uuid.UUID  `db:"store_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
