package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexandrosLiaskos/Tombolos/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "tombolos",
	Short:   "Static gateway for the Tombolos web map",
	Long: `Tombolos serves the static single-page web map application:
the HTML entry point, a health check, and the map's asset files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("static-path", "", "static asset directory (default: ./static, env: TOMBOLOS_STATIC_PATH)")
	rootCmd.PersistentFlags().String("app-name", "", "application name reported by /health (default: Tombolos Web Map)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
