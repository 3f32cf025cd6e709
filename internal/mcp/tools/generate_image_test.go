package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/gemini-image-mcp/internal/imagegen"
)

type stubGenerator struct {
	outcome imagegen.Outcome
	calls   int
	prompt  string
	env     imagegen.CredentialProvider
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, env imagegen.CredentialProvider) imagegen.Outcome {
	s.calls++
	s.prompt = prompt
	s.env = env
	return s.outcome
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "generate_image", Arguments: args}}
}

func singleText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "content is not text")
	assert.Equal(t, "text", text.Type)
	return text.Text
}

func TestGenerateImageHandler_OneTextBlockPerOutcome(t *testing.T) {
	outcomes := map[string]imagegen.Outcome{
		"no credential": imagegen.NoCredential{Key: imagegen.CredentialKey},
		"no image":      imagegen.NoImage{},
		"fault":         imagegen.Fault{Err: errors.New("quota exhausted")},
		"success":       imagegen.Success{Image: imagegen.Image{MIMEType: "image/png", Data: []byte("png")}},
	}
	for name, outcome := range outcomes {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{outcome: outcome}
			creds := imagegen.StaticCredentials{imagegen.CredentialKey: "k"}
			h := &GenerateImageHandler{Service: gen, Credentials: creds}

			res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": "a red circle"}))

			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Equal(t, outcome.Text(), singleText(t, res))
			assert.Equal(t, "a red circle", gen.prompt)
			assert.Equal(t, creds, gen.env)
		})
	}
}

func TestGenerateImageHandler_RejectsMissingPrompt(t *testing.T) {
	for name, args := range map[string]map[string]any{
		"absent":     {},
		"blank":      {"prompt": "   "},
		"wrong type": {"prompt": 42},
	} {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{outcome: imagegen.NoImage{}}
			h := &GenerateImageHandler{Service: gen}

			res, err := h.ToolAdapter(context.Background(), callRequest(args))

			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, singleText(t, res), "prompt")
			assert.Zero(t, gen.calls)
		})
	}
}
