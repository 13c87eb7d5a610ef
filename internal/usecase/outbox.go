package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusProcessing OutboxStatus = "processing"
	OutboxStatusDone       OutboxStatus = "done"
	OutboxStatusFailed     OutboxStatus = "failed"
)

type OutboxEventType string

const (
	EventStoreCreated   OutboxEventType = "store.created"
	EventStoreUpdated   OutboxEventType = "store.updated"
	EventProductAdded   OutboxEventType = "product.added"
	EventProductUpdated OutboxEventType = "product.updated"
	EventProductDeleted OutboxEventType = "product.deleted"
)

// OutboxEvent — событие каталога, публикуемое в Kafka через transactional outbox:
// запись создаётся в той же транзакции, что и изменение данных.
type OutboxEvent struct {
	ID        int64
	EventID   string // uuid, ключ идемпотентности для потребителей
	EventType OutboxEventType
	StoreID   uuid.UUID
	Payload   []byte // JSON-тело события
	Status    OutboxStatus
	CreatedAt time.Time
}

// eventPayload — формат тела события на проводе.
type eventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	StoreID    string    `json:"store_id"`
	Slug       string    `json:"slug"`
	ProductID  string    `json:"product_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOutboxEvent собирает событие каталога с JSON-телом.
// productID передаётся uuid.Nil для событий уровня магазина.
func NewOutboxEvent(eventType OutboxEventType, storeID uuid.UUID, slug string, productID uuid.UUID) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload := eventPayload{
		EventID:    eventID,
		EventType:  string(eventType),
		StoreID:    storeID.String(),
		Slug:       slug,
		OccurredAt: time.Now().UTC(),
	}
	if productID != uuid.Nil {
		payload.ProductID = productID.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		StoreID:   storeID,
		Payload:   body,
		Status:    OutboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
