package secrets

import "context"

// Provider resolves secrets from a backing store.
type Provider interface {
	// Fetch looks up every name under prefix and returns a map keyed by the
	// short name. A name that cannot be resolved fails the whole call.
	Fetch(ctx context.Context, prefix string, names []string) (map[string]string, error)
}
