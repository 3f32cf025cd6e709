package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/gemini-image-mcp/internal/config"
	"github.com/roivaz/gemini-image-mcp/internal/logging"
	"github.com/roivaz/gemini-image-mcp/internal/mcp"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("generate-image: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{Use: "generate-image", SilenceUsage: true}

	root.PersistentFlags().String("gemini-api-key", "", "Gemini API key (prefer GEMINI_API_KEY)")
	root.PersistentFlags().String("gemini-image-model", config.DefaultImageModel, "Gemini image model")
	root.PersistentFlags().String("gemini-api-endpoint", "", "Override the Gemini API base URL")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	var prompt string
	var format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Invoke generate_image once and print the tool result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(prompt) == "" {
				return fmt.Errorf("--prompt is required")
			}

			logger := logging.New(logging.LevelLogger(config.LogLevel()).WithName("generate-image"))
			cfg := mcp.DefaultConfig(logger)
			handler := cfg.ToolAdapters[mcp.ToolGenerateImage]

			req := mcpgo.CallToolRequest{}
			req.Params.Name = mcp.ToolGenerateImage
			req.Params.Arguments = map[string]any{"prompt": prompt}

			res, err := handler.ToolAdapter(cmd.Context(), req)
			if err != nil {
				return err
			}
			return outputResult(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Text prompt describing the image")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	root.AddCommand(cmd)

	config.Init(root)
	return root
}

func outputResult(w io.Writer, res *mcpgo.CallToolResult, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		out, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
