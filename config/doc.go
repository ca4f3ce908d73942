// Package config provides configuration loading and validation for the
// Tombolos gateway.
//
// The package handles YAML configuration files, environment variables, and
// CLI flags with automatic merging and validation using
// go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (TOMBOLOS_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with TOMBOLOS_ prefix:
//   - server.port → TOMBOLOS_SERVER_PORT
//   - static.path → TOMBOLOS_STATIC_PATH
//   - log.level → TOMBOLOS_LOG_LEVEL
//
// # Defaults
//
// The defaults reproduce the original deployment: host 0.0.0.0, port 8000,
// static assets in ./static, permissive CORS, info-level logging.
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Env must be dev, prod, or production
//   - Log level must be debug, info, warn, or error
package config
