package llm

import (
	"context"
	"fmt"
	"sort"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

// Provider identifiers known to the relay.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Provider is the uniform capability every upstream LLM exposes to the relay.
// Complete receives the full turn history, the last turn being the new user
// message, and returns the generated reply text.
type Provider interface {
	Complete(ctx context.Context, history []model.ChatTurn) (string, error)
}

// Registry maps provider ids to providers. It is populated at startup and
// read-only afterwards, so it is safe for concurrent use by request handlers.
type Registry struct {
	providers  map[string]Provider
	defaultID  string
	fallbackID string
}

// NewRegistry creates a registry whose empty selector resolves to defaultID.
func NewRegistry(defaultID string) *Registry {
	return &Registry{providers: make(map[string]Provider), defaultID: defaultID}
}

// Register adds or replaces the provider for id.
func (r *Registry) Register(id string, p Provider) {
	r.providers[id] = p
}

// SetFallback sets the provider used for unrecognised selectors.
func (r *Registry) SetFallback(id string) {
	r.fallbackID = id
}

// Default returns the id used when no selector is given.
func (r *Registry) Default() string { return r.defaultID }

// IDs returns the registered provider ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve picks the provider for a client-supplied selector. An empty selector
// uses the default, a registered id uses that provider, and anything else uses
// the fallback when one is set.
func (r *Registry) Resolve(selector string) (string, Provider, error) {
	id := selector
	if id == "" {
		id = r.defaultID
	}
	if p, ok := r.providers[id]; ok {
		return id, p, nil
	}
	if p, ok := r.providers[r.fallbackID]; ok && selector != "" {
		return r.fallbackID, p, nil
	}
	return "", nil, app_errors.New(app_errors.ErrConfiguration, fmt.Sprintf("no provider registered for %q", id))
}
