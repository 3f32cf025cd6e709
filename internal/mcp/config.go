package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/gemini-image-mcp/internal/config"
	"github.com/roivaz/gemini-image-mcp/internal/imagegen"
	"github.com/roivaz/gemini-image-mcp/internal/logging"
	"github.com/roivaz/gemini-image-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Model        string
	Logger       logging.Logger
}

// DefaultCredentials prefers a key supplied with the session over the one in
// the process configuration.
func DefaultCredentials() imagegen.CredentialProvider {
	return DefaultCredentialsWith(imagegen.ConfigCredentials{})
}

// DefaultCredentialsWith chains session credentials in front of fallback.
func DefaultCredentialsWith(fallback imagegen.CredentialProvider) imagegen.CredentialProvider {
	return imagegen.ChainCredentials{imagegen.SessionCredentials{}, fallback}
}

func DefaultConfig(log logging.Logger) Config {
	adapter := imagegen.NewAdapter(
		imagegen.GeminiFactory{BaseURL: config.GeminiAPIEndpoint()},
		config.GeminiImageModel(),
		log,
	)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			ToolGenerateImage: &tools.GenerateImageHandler{Service: adapter, Credentials: DefaultCredentials()},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
			server.WithHTTPContextFunc(CredentialHeaderContext),
		},
		Model:  adapter.Model(),
		Logger: log,
	}
}
