package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/acme-labs/showcase-api/internal/models"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	Create(ctx context.Context, item models.Item) error
	GetByID(ctx context.Context, id string) (*models.Item, error)
	LookupNamed(ctx context.Context, name string) (string, error)
}

// InMemoryItemRepository implements ItemRepository with in-memory storage
type InMemoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.Item

	// named holds the legacy name -> description entries served
	// by the /item/{id} lookup endpoint
	named map[string]string
}

// NewInMemoryItemRepository creates a new in-memory item repository with seed data
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items: make(map[string]models.Item),
		named: map[string]string{
			"foo": "The Foo Wrestlers",
		},
	}
}

// Create stores a new item
func (r *InMemoryItemRepository) Create(ctx context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

// GetByID returns an item by its ID
func (r *InMemoryItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// LookupNamed returns the description of a legacy named item
func (r *InMemoryItemRepository) LookupNamed(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, exists := r.named[name]
	if !exists {
		return "", ErrItemNotFound
	}
	return desc, nil
}
