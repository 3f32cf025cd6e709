package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/gemini-image-mcp/internal/imagegen"
)

// ImageGenerator produces an outcome for a prompt, resolving the API key
// through env.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, env imagegen.CredentialProvider) imagegen.Outcome
}

type GenerateImageHandler struct {
	Service     ImageGenerator
	Credentials imagegen.CredentialProvider
}

func (h *GenerateImageHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := requireNonBlankString(req, "prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outcome := h.Service.Generate(ctx, prompt, h.Credentials)
	return mcp.NewToolResultText(outcome.Text()), nil
}
