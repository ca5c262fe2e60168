package service

import (
	"context"

	"talky/backend/internal/llm"
	"talky/backend/internal/model"
)

// ModelService reports which upstream providers the relay can route to.
type ModelService struct {
	registry *llm.Registry
}

// NewModelService creates a new ModelService.
func NewModelService(registry *llm.Registry) *ModelService {
	return &ModelService{registry: registry}
}

// List returns the registered provider ids and the default. It makes no
// upstream call.
func (s *ModelService) List(_ context.Context) (*model.ProvidersResponse, error) {
	return &model.ProvidersResponse{
		Default:   s.registry.Default(),
		Providers: s.registry.IDs(),
	}, nil
}
