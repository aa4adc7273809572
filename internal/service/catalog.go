package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"address-catalog/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrMissingField is returned when a required creation field is blank
var ErrMissingField = errors.New("service: required field is empty")

// Resolver interface for dependency injection
type Resolver interface {
	Resolve(ctx context.Context, postalCode string) (*models.AddressFragment, error)
}

// EntryStore interface for dependency injection
type EntryStore interface {
	Add(ctx context.Context, entry models.AddressEntry) bool
	Update(ctx context.Context, id string, patch models.EntryPatch) bool
	Remove(ctx context.Context, id string) bool
	Get(id string) (models.AddressEntry, bool)
	All() []models.AddressEntry
}

// CreateRequest carries the creation form. SubmissionID identifies one
// rendering of the form so that repeated submissions create one entry.
type CreateRequest struct {
	SubmissionID string
	Username     string
	DisplayName  string
	PostalCode   string
}

// Catalog contains the address book flows: create, list, rename and delete
type Catalog struct {
	resolver    Resolver
	store       EntryStore
	submissions singleflight.Group
}

// NewCatalog creates a new catalog service
func NewCatalog(resolver Resolver, store EntryStore) *Catalog {
	return &Catalog{resolver: resolver, store: store}
}

// Create resolves the postal code and adds a new entry built from the request
// and the lookup result. Nothing is added when the lookup fails. Username and
// display name are stored as entered.
func (c *Catalog) Create(ctx context.Context, req CreateRequest) (models.AddressEntry, error) {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return models.AddressEntry{}, fmt.Errorf("%w: username", ErrMissingField)
	case strings.TrimSpace(req.DisplayName) == "":
		return models.AddressEntry{}, fmt.Errorf("%w: displayName", ErrMissingField)
	case strings.TrimSpace(req.PostalCode) == "":
		return models.AddressEntry{}, fmt.Errorf("%w: postalCode", ErrMissingField)
	}

	id := entryID(req.SubmissionID)
	if existing, ok := c.store.Get(id); ok {
		return existing, nil
	}

	// Duplicate submissions share one lookup. It runs detached from the
	// first caller so that a cancelled submission does not fail the others.
	lookupCtx := context.WithoutCancel(ctx)
	ch := c.submissions.DoChan(id, func() (interface{}, error) {
		return c.resolver.Resolve(lookupCtx, req.PostalCode)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return models.AddressEntry{}, fmt.Errorf("service: submission abandoned: %w", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return models.AddressEntry{}, fmt.Errorf("service: failed to resolve postal code: %w", res.Err)
	}
	if err := ctx.Err(); err != nil {
		return models.AddressEntry{}, fmt.Errorf("service: submission abandoned: %w", err)
	}

	fragment := res.Val.(*models.AddressFragment)
	entry := models.AddressEntry{
		ID:           id,
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PostalCode:   req.PostalCode,
		Street:       fragment.Street,
		Neighborhood: fragment.Neighborhood,
		City:         fragment.City,
		Region:       fragment.Region,
	}
	if !c.store.Add(ctx, entry) {
		existing, _ := c.store.Get(id)
		return existing, nil
	}

	log.Info().Str("id", id).Str("username", entry.Username).Str("city", entry.City).Msg("address added")
	return entry, nil
}

// List returns the entries matching the filter, in insertion order
func (c *Catalog) List(field models.FilterField, text string) []models.AddressEntry {
	return FilterEntries(c.store.All(), field, text)
}

// Get returns the entry with id
func (c *Catalog) Get(id string) (models.AddressEntry, bool) {
	return c.store.Get(id)
}

// Rename sets the display name of the entry with id to the trimmed name.
// Blank names are ignored. It reports whether an update was applied.
func (c *Catalog) Rename(ctx context.Context, id, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return c.store.Update(ctx, id, models.EntryPatch{DisplayName: &name})
}

// Delete removes the entry with id and reports whether it existed
func (c *Catalog) Delete(ctx context.Context, id string) bool {
	return c.store.Remove(ctx, id)
}

func entryID(submissionID string) string {
	if parsed, err := uuid.Parse(submissionID); err == nil {
		return parsed.String()
	}
	return uuid.NewString()
}
