// Package provider abstracts the upstream generative-AI call. The server
// treats the model as an opaque prompt-in, text-out function.
package provider

import "context"

// Provider is the interface for all upstream LLM providers.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
