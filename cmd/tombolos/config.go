package main

import (
	"github.com/spf13/cobra"

	"github.com/AlexandrosLiaskos/Tombolos/config"
)

// loadConfig resolves the --config flag and loads the layered configuration
// for the invoked command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var configFiles []string

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		configFiles = append(configFiles, configFile)
	}

	return config.Load(configFiles, cmd.Flags())
}
