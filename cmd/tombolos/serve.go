package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	tombolos "github.com/AlexandrosLiaskos/Tombolos"
	"github.com/AlexandrosLiaskos/Tombolos/config"
	"github.com/AlexandrosLiaskos/Tombolos/filesystem"
	gatewayhttp "github.com/AlexandrosLiaskos/Tombolos/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	Long:  `Start the Tombolos HTTP gateway serving the web map frontend.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (default: 0.0.0.0)")
	serveCmd.Flags().Int("port", 0, "HTTP server port (default: 8000)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	// Create the static directory if absent so a bare deployment still
	// starts and serves the index placeholder.
	if err := os.MkdirAll(cfg.Static.Path, 0o750); err != nil {
		return fmt.Errorf("create static directory: %w", err)
	}

	root, err := os.OpenRoot(cfg.Static.Path)
	if err != nil {
		return fmt.Errorf("open static root: %w", err)
	}
	defer func() { _ = root.Close() }()

	store := filesystem.NewAssetStore(root)
	gateway := tombolos.NewGateway(store, cfg.App.Name)

	handlerConfig := gatewayhttp.HandlerConfig{
		CORS: cfg.CORS,
	}
	handler := gatewayhttp.NewHandler(&handlerConfig, gateway)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr, "static_path", cfg.Static.Path, "app", cfg.App.Name)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
