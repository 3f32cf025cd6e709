package imagegen

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockClient is a test double for Client.
type mockClient struct {
	GenerateContentFunc func(ctx context.Context, model, prompt string) (*Response, error)
}

func (m *mockClient) GenerateContent(ctx context.Context, model, prompt string) (*Response, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, model, prompt)
	}
	return nil, errors.New("GenerateContentFunc not set")
}

// countingFactory records how many clients were built and with which key.
type countingFactory struct {
	client  Client
	err     error
	calls   atomic.Int32
	lastKey atomic.Value
}

func (f *countingFactory) NewClient(_ context.Context, apiKey string) (Client, error) {
	f.calls.Add(1)
	f.lastKey.Store(apiKey)
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type testPart struct {
	mime string
	data []byte
	text string
}

func (p testPart) InlineData() (Image, bool) {
	if p.data == nil && p.mime == "" {
		return Image{}, false
	}
	return Image{MIMEType: p.mime, Data: p.data}, true
}
