package service

import (
	"context"

	"github.com/acme-labs/showcase-api/internal/models"
	"github.com/acme-labs/showcase-api/internal/repository"
	"github.com/google/uuid"
)

// ItemService handles business logic for catalog items
type ItemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// CreateItem stores a new item built from a validated create request
func (s *ItemService) CreateItem(ctx context.Context, req models.ItemCreate) (*models.Item, error) {
	item := models.Item{
		ID:          generateItemID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// GetItem returns a stored item by ID
func (s *ItemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// LookupNamed returns the description of a legacy named item
func (s *ItemService) LookupNamed(ctx context.Context, name string) (string, error) {
	return s.repo.LookupNamed(ctx, name)
}

// generateItemID generates a unique item ID using UUID
func generateItemID() string {
	return uuid.New().String()
}
