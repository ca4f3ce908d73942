package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tombolos "github.com/AlexandrosLiaskos/Tombolos"
	"github.com/AlexandrosLiaskos/Tombolos/config"
	"github.com/AlexandrosLiaskos/Tombolos/filesystem"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List files in the static asset directory",
	Long: `Walk the static asset directory and list every file the gateway
would serve, with its size and detected media type. Useful to verify a
deployment's asset tree before pointing traffic at it.`,
	RunE: runAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Static.Path); os.IsNotExist(err) {
		return fmt.Errorf("static directory does not exist: %s", cfg.Static.Path)
	}

	root, err := os.OpenRoot(cfg.Static.Path)
	if err != nil {
		return fmt.Errorf("open static root: %w", err)
	}
	defer func() { _ = root.Close() }()

	store := filesystem.NewAssetStore(root)
	gateway := tombolos.NewGateway(store, cfg.App.Name)

	slog.Info("scanning static directory", "path", cfg.Static.Path)

	assets, err := gateway.Assets(ctx)
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}

	var totalBytes int64
	for _, a := range assets {
		slog.Info("asset", "path", a.Path, "size", a.Size, "content_type", a.ContentType)
		totalBytes += a.Size
	}

	slog.Info("scan complete", "files", len(assets), "total_bytes", totalBytes)
	return nil
}
