package provider

import "context"

// FakeProvider returns a fixed reply or error; used in tests and by the
// server when no API key is configured.
type FakeProvider struct {
	ResponseText string
	Error        error

	// LastPrompt records the most recent prompt for assertions.
	LastPrompt string
}

func NewFake(response string) *FakeProvider {
	return &FakeProvider{ResponseText: response}
}

func (f *FakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.LastPrompt = prompt
	if f.Error != nil {
		return "", f.Error
	}
	return f.ResponseText, nil
}
