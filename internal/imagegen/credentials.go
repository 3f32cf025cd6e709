package imagegen

import (
	"context"
	"strings"

	"github.com/roivaz/gemini-image-mcp/internal/config"
)

// CredentialKey names the API key in every credential store.
const CredentialKey = config.KeyGeminiAPIKey

// CredentialProvider looks up a named credential. A blank value counts as
// absent.
type CredentialProvider interface {
	Credential(ctx context.Context, key string) (string, bool)
}

// ConfigCredentials resolves credentials from the process configuration
// (flags, environment, .env file).
type ConfigCredentials struct{}

func (ConfigCredentials) Credential(_ context.Context, key string) (string, bool) {
	return config.Lookup(key)
}

// StaticCredentials serves credentials from a fixed map.
type StaticCredentials map[string]string

func (s StaticCredentials) Credential(_ context.Context, key string) (string, bool) {
	v := strings.TrimSpace(s[key])
	return v, v != ""
}

type sessionCredentialsKey struct{}

// WithSessionCredential returns a context carrying a credential scoped to the
// current session or request.
func WithSessionCredential(ctx context.Context, key, value string) context.Context {
	existing, _ := ctx.Value(sessionCredentialsKey{}).(map[string]string)
	merged := make(map[string]string, len(existing)+1)
	for k, v := range existing {
		merged[k] = v
	}
	merged[key] = value
	return context.WithValue(ctx, sessionCredentialsKey{}, merged)
}

// SessionCredentials resolves credentials placed on the context by
// WithSessionCredential.
type SessionCredentials struct{}

func (SessionCredentials) Credential(ctx context.Context, key string) (string, bool) {
	values, _ := ctx.Value(sessionCredentialsKey{}).(map[string]string)
	v := strings.TrimSpace(values[key])
	return v, v != ""
}

// ChainCredentials asks each provider in order and returns the first hit.
type ChainCredentials []CredentialProvider

func (c ChainCredentials) Credential(ctx context.Context, key string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v, ok := p.Credential(ctx, key); ok {
			return v, true
		}
	}
	return "", false
}
