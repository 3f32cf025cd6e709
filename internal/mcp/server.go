package mcp

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/gemini-image-mcp/internal/imagegen"
	"github.com/roivaz/gemini-image-mcp/internal/logging"
)

const (
	ServerName    = "gemini-image-generator"
	ServerVersion = "1.0.0"

	ToolGenerateImage = "generate_image"

	// HeaderGeminiAPIKey carries a per-session API key on the HTTP transport.
	HeaderGeminiAPIKey = "X-Gemini-Api-Key"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

// ToolDefinitions returns the schema of every tool the server can expose.
func ToolDefinitions(model string) map[string]mcp.Tool {
	return map[string]mcp.Tool{
		ToolGenerateImage: mcp.NewTool(ToolGenerateImage,
			mcp.WithTitleAnnotation("Generate Image"),
			mcp.WithDescription(fmt.Sprintf("Generates an image from a text prompt using the %s model. Returns the image as a base64 data URI.", model)),
			mcp.WithString("prompt",
				mcp.Required(),
				mcp.Description("The text prompt describing the image to generate."),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
		),
	}
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	toolDefinitions := ToolDefinitions(cfg.Model)
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Info("skipping tool without definition", "tool", name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
		log.Debug("registered tool", "tool", name)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		log:     log,
	}
}

// ServeStdio runs the stdio transport until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("serving MCP over stdio", "server", ServerName, "version", ServerVersion)
	return server.NewStdioServer(s.MCP).Listen(ctx, in, out)
}

// CredentialHeaderContext copies the API key header, when present, into the
// request context as a session credential.
func CredentialHeaderContext(ctx context.Context, r *http.Request) context.Context {
	if key := r.Header.Get(HeaderGeminiAPIKey); key != "" {
		return imagegen.WithSessionCredential(ctx, imagegen.CredentialKey, key)
	}
	return ctx
}
