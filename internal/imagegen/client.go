package imagegen

import "context"

// Part is a single piece of an upstream response. Parts that carry inline
// binary data expose it through InlineData.
type Part interface {
	InlineData() (Image, bool)
}

// Response is the ordered list of parts produced by one upstream call.
type Response struct {
	Parts []Part
}

// Client issues a single content generation request.
type Client interface {
	GenerateContent(ctx context.Context, model, prompt string) (*Response, error)
}

// ClientFactory builds a Client bound to one credential. A fresh client is
// built for every invocation.
type ClientFactory interface {
	NewClient(ctx context.Context, apiKey string) (Client, error)
}

// ClientFactoryFunc adapts a function to ClientFactory.
type ClientFactoryFunc func(ctx context.Context, apiKey string) (Client, error)

func (f ClientFactoryFunc) NewClient(ctx context.Context, apiKey string) (Client, error) {
	return f(ctx, apiKey)
}
