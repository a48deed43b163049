package secrets

import (
	"context"
	"os"
)

// EnvProvider resolves secrets from process environment variables.
// The prefix is ignored; names map directly to variable names.
type EnvProvider struct {
	lookup func(string) (string, bool)
}

// NewEnvProvider creates a provider reading from the process environment
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

// Fetch implements Provider
func (p *EnvProvider) Fetch(ctx context.Context, prefix string, names []string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewError("Fetch", "", err)
	}

	result := make(map[string]string, len(names))
	for _, name := range names {
		value, ok := p.lookup(name)
		if !ok {
			return nil, NewError("Fetch", prefix+name, ErrParameterNotFound)
		}
		result[name] = value
	}
	return result, nil
}
