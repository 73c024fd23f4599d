package models

// ItemCreate is the request body for creating a catalog item.
// Validation rules are enforced via validator tags before the
// item reaches the service layer.
type ItemCreate struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Tax         *float64 `json:"tax" validate:"omitempty,gte=0"`
}

// Item represents a stored catalog item
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax,omitempty"`
}

// SavedItem is the echo payload used by the save and nested endpoints.
// ItemID is optional and serializes as null when absent; Tags defaults
// to an empty list rather than null.
type SavedItem struct {
	ItemID *string  `json:"item_id"`
	Tags   []string `json:"tags"`
}

// Normalize applies the payload defaults in place
func (s *SavedItem) Normalize() {
	if s.Tags == nil {
		s.Tags = []string{}
	}
}
