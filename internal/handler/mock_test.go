package handler

import (
	"context"

	"address-catalog/internal/models"
	"address-catalog/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Create(ctx context.Context, req service.CreateRequest) (models.AddressEntry, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.AddressEntry), args.Error(1)
}

func (m *MockCatalogService) List(field models.FilterField, text string) []models.AddressEntry {
	args := m.Called(field, text)
	return args.Get(0).([]models.AddressEntry)
}

func (m *MockCatalogService) Get(id string) (models.AddressEntry, bool) {
	args := m.Called(id)
	return args.Get(0).(models.AddressEntry), args.Bool(1)
}

func (m *MockCatalogService) Rename(ctx context.Context, id, name string) bool {
	args := m.Called(ctx, id, name)
	return args.Bool(0)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

// MockPostalCodeResolver is a mock implementation of the PostalCodeResolver interface
type MockPostalCodeResolver struct {
	mock.Mock
}

func (m *MockPostalCodeResolver) Resolve(ctx context.Context, postalCode string) (*models.AddressFragment, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).(*models.AddressFragment), args.Error(1)
}

var sampleEntry = models.AddressEntry{
	ID:           "x",
	Username:     "Ana",
	DisplayName:  "Casa",
	PostalCode:   "01001-000",
	Street:       "Praça da Sé",
	Neighborhood: "Sé",
	City:         "São Paulo",
	Region:       "SP",
}
