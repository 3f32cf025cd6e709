package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiFactory builds Gemini API clients through the google.golang.org/genai SDK.
type GeminiFactory struct {
	// BaseURL overrides the default Gemini API endpoint when set.
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a genai client bound to apiKey.
func (f GeminiFactory) NewClient(ctx context.Context, apiKey string) (Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: f.HTTPClient,
	}
	if base := strings.TrimSpace(f.BaseURL); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &geminiClient{models: client.Models}, nil
}

type geminiClient struct {
	models contentGenerator
}

func (c *geminiClient) GenerateContent(ctx context.Context, model, prompt string) (*Response, error) {
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return nil, annotateGeminiError(err)
	}
	return fromGeminiResponse(resp), nil
}

// geminiPart exposes a genai part's inline blob.
type geminiPart struct {
	part *genai.Part
}

func (p geminiPart) InlineData() (Image, bool) {
	if p.part == nil || p.part.InlineData == nil {
		return Image{}, false
	}
	return Image{MIMEType: p.part.InlineData.MIMEType, Data: p.part.InlineData.Data}, true
}

// fromGeminiResponse flattens the parts of every candidate, in order.
func fromGeminiResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			out.Parts = append(out.Parts, geminiPart{part: part})
		}
	}
	return out
}

// annotateGeminiError prefixes API errors with their failure class while
// keeping the upstream message intact.
func annotateGeminiError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
		return fmt.Errorf("authentication failed (%d): %w", apiErr.Code, err)
	case apiErr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded (%d): %w", apiErr.Code, err)
	case apiErr.Code == http.StatusBadRequest:
		return fmt.Errorf("invalid request (%d): %w", apiErr.Code, err)
	case apiErr.Code >= 500:
		return fmt.Errorf("service unavailable (%d): %w", apiErr.Code, err)
	default:
		return fmt.Errorf("api error (%d): %w", apiErr.Code, err)
	}
}
