package converter

import "time"

// StorefrontRedisModel — витрина магазина в том виде, в котором она лежит в Redis.
type StorefrontRedisModel struct {
	Store     StoreRedisModel     `json:"store"`
	Products  []ProductRedisModel `json:"products"`
	PublicURL string              `json:"public_url"`
}

type StoreRedisModel struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Currency       string    `json:"currency"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	CreatorID      string    `json:"creator_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProductRedisModel struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
