package converter

import (
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/internal/usecase"
)

// StoreConverter преобразует сущности Store между domain и моделью PostgreSQL.
type StoreConverter struct{}

func (StoreConverter) ToModel(entity *domain.Store) *StoreModel {
	return &StoreModel{
		ID:             entity.ID,
		Slug:           entity.Slug,
		Name:           entity.Name,
		Description:    entity.Description,
		WhatsAppNumber: entity.WhatsAppNumber,
		Currency:       entity.Currency,
		LogoURL:        entity.LogoURL,
		CreatorID:      entity.CreatorID,
		CreatedAt:      entity.CreatedAt,
	}
}

func (StoreConverter) ToEntity(model *StoreModel) *domain.Store {
	return &domain.Store{
		ID:             model.ID,
		Slug:           model.Slug,
		Name:           model.Name,
		Description:    model.Description,
		WhatsAppNumber: model.WhatsAppNumber,
		Currency:       model.Currency,
		LogoURL:        model.LogoURL,
		CreatorID:      model.CreatorID,
		CreatedAt:      model.CreatedAt,
	}
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		StoreID:     entity.StoreID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		ImageURL:    entity.ImageURL,
		CreatedAt:   entity.CreatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		CreatedAt:   model.CreatedAt,
	}
}

func (c ProductConverter) ToArrEntity(models []*ProductModel) []*domain.Product {
	result := make([]*domain.Product, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
type UserConverter struct{}

func (UserConverter) ToModel(entity *domain.User) *UserModel {
	return &UserModel{
		ID:           entity.ID,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		CreatedAt:    entity.CreatedAt,
	}
}

func (UserConverter) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:        entity.ID,
		EventID:   entity.EventID,
		EventType: string(entity.EventType),
		StoreID:   entity.StoreID,
		Payload:   entity.Payload,
		Status:    string(entity.Status),
		CreatedAt: entity.CreatedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:        model.ID,
		EventID:   model.EventID,
		EventType: usecase.OutboxEventType(model.EventType),
		StoreID:   model.StoreID,
		Payload:   model.Payload,
		Status:    usecase.OutboxStatus(model.Status),
		CreatedAt: model.CreatedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
