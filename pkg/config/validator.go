package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks if a server configuration is valid
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Custom validation: the sse transport needs an address to bind to
	if cfg.Transport == TransportSSE && cfg.ListenAddr == "" {
		return fmt.Errorf("transport %q requires listenAddr to be set", TransportSSE)
	}

	return nil
}
