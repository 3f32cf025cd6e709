package imagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roivaz/gemini-image-mcp/internal/logging"
)

// ErrNoImage is returned by the call step when the response holds no image part.
var ErrNoImage = errors.New("no image data returned")

// Adapter turns one prompt into one upstream call and back into an Outcome.
// It holds no per-call state and is safe for concurrent use.
type Adapter struct {
	factory ClientFactory
	model   string
	log     logging.Logger
}

// NewAdapter constructs an Adapter that builds clients through factory and
// targets model.
func NewAdapter(factory ClientFactory, model string, log logging.Logger) *Adapter {
	return &Adapter{factory: factory, model: model, log: log.WithName("imagegen.adapter").WithValues("model", model)}
}

// Model returns the upstream model identifier.
func (a *Adapter) Model() string {
	return a.model
}

// Generate resolves the API key from env, calls the model once and reports the
// result. It never panics and never returns a nil Outcome.
func (a *Adapter) Generate(ctx context.Context, prompt string, env CredentialProvider) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			a.log.Error(err, "image generation panicked")
			out = Fault{Err: err}
		}
	}()

	var apiKey string
	var ok bool
	if env != nil {
		apiKey, ok = env.Credential(ctx, CredentialKey)
	}
	if !ok {
		a.log.Info("api key not configured", "key", CredentialKey)
		return NoCredential{Key: CredentialKey}
	}

	img, parts, err := a.generate(ctx, apiKey, prompt)
	switch {
	case errors.Is(err, ErrNoImage):
		a.log.Info("response carried no image data", "parts", parts)
		return NoImage{Parts: parts}
	case err != nil:
		a.log.Error(err, "image generation failed")
		return Fault{Err: err}
	}

	a.log.Debug("image generated", "mime_type", img.MIMEType, "bytes", len(img.Data))
	return Success{Image: img}
}

func (a *Adapter) generate(ctx context.Context, apiKey, prompt string) (Image, int, error) {
	if a.factory == nil {
		return Image{}, 0, errors.New("no client factory configured")
	}
	client, err := a.factory.NewClient(ctx, apiKey)
	if err != nil {
		return Image{}, 0, fmt.Errorf("create client: %w", err)
	}

	a.log.Debug("calling model", "prompt_preview", preview(prompt, 80))
	resp, err := client.GenerateContent(ctx, a.model, prompt)
	if err != nil {
		return Image{}, 0, err
	}
	if resp == nil {
		return Image{}, 0, ErrNoImage
	}

	img, ok := FirstImage(resp.Parts)
	if !ok {
		return Image{}, len(resp.Parts), ErrNoImage
	}
	return img, len(resp.Parts), nil
}

// preview shortens s to at most n runes.
func preview(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
