package handler

import (
	"context"

	"address-catalog/internal/models"
	"address-catalog/internal/service"
)

// CatalogService interface for dependency injection
type CatalogService interface {
	Create(ctx context.Context, req service.CreateRequest) (models.AddressEntry, error)
	List(field models.FilterField, text string) []models.AddressEntry
	Get(id string) (models.AddressEntry, bool)
	Rename(ctx context.Context, id, name string) bool
	Delete(ctx context.Context, id string) bool
}

// PostalCodeResolver interface for dependency injection
type PostalCodeResolver interface {
	Resolve(ctx context.Context, postalCode string) (*models.AddressFragment, error)
}
