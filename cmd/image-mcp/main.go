package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/gemini-image-mcp/internal/config"
	"github.com/roivaz/gemini-image-mcp/internal/logging"
	"github.com/roivaz/gemini-image-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "image-mcp",
		Short:        "Gemini image generation MCP server",
		RunE:         run,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("transport", config.TransportStdio, "Transport to serve: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", config.DefaultEndpointPath, "HTTP endpoint path for MCP requests")
	root.PersistentFlags().String("gemini-api-key", "", "Gemini API key (prefer GEMINI_API_KEY)")
	root.PersistentFlags().String("gemini-image-model", config.DefaultImageModel, "Gemini image model")
	root.PersistentFlags().String("gemini-api-endpoint", "", "Override the Gemini API base URL")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.LevelLogger(config.LogLevel()))
	srv := mcp.New(mcp.DefaultConfig(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	return serve(ctx, srv, config.Transport(), addr, os.Stdin, os.Stdout, logger)
}

// serve runs the selected transport until ctx is done.
func serve(ctx context.Context, srv *mcp.Server, transport, addr string, in io.Reader, out io.Writer, logger logging.Logger) error {
	switch transport {
	case config.TransportStdio:
		return serveStdio(ctx, srv, in, out)
	case config.TransportHTTP:
		return serveHTTP(ctx, srv, addr, logger)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, config.TransportStdio, config.TransportHTTP)
	}
}

func serveStdio(ctx context.Context, srv *mcp.Server, in io.Reader, out io.Writer) error {
	err := srv.ServeStdio(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func serveHTTP(ctx context.Context, srv *mcp.Server, addr string, logger logging.Logger) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
