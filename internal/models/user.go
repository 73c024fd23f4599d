package models

// User represents a user payload in nested request bodies
type User struct {
	Username string `json:"username" validate:"required"`
}

// NestedPayload carries a user and an item in a single request body,
// each under its own key
type NestedPayload struct {
	User User      `json:"user"`
	Item SavedItem `json:"item"`
}
