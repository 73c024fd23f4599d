package models

import "fmt"

// ModelName enumerates the machine learning models the catalog knows about
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ParseModelName converts a raw path segment into a ModelName
func ParseModelName(s string) (ModelName, error) {
	switch ModelName(s) {
	case ModelAlexNet, ModelResNet, ModelLeNet:
		return ModelName(s), nil
	}
	return "", fmt.Errorf("unknown model name: %q", s)
}

// ModelDescription is the response payload for a model lookup
type ModelDescription struct {
	ModelName ModelName `json:"model_name"`
	Message   string    `json:"message"`
}
