package service

import (
	"context"

	"github.com/acme-labs/showcase-api/internal/models"
)

// ModelCatalog resolves model names to their descriptions
type ModelCatalog struct {
	messages map[models.ModelName]string
}

// NewModelCatalog creates a catalog preloaded with the known models
func NewModelCatalog() *ModelCatalog {
	return &ModelCatalog{
		messages: map[models.ModelName]string{
			models.ModelAlexNet: "Deep Learning FTW!",
			models.ModelResNet:  "Have some residuals",
			models.ModelLeNet:   "LeCNN all the images",
		},
	}
}

// Describe returns the description for a model name
func (c *ModelCatalog) Describe(ctx context.Context, raw string) (*models.ModelDescription, error) {
	name, err := models.ParseModelName(raw)
	if err != nil {
		return nil, err
	}

	return &models.ModelDescription{
		ModelName: name,
		Message:   c.messages[name],
	}, nil
}
