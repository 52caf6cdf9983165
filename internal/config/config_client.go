package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by cmd/client.
type ClientConfig struct {
	// HTTPAddress is the address of the users-api server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// AuthToken is sent as "Authorization: Bearer <AuthToken>".
	AuthToken string
	// LogLevel is the zerolog level of the client logger.
	LogLevel string
	// Command holds the positional arguments left after flag parsing,
	// e.g. ["get", "3"].
	Command []string
}

// GetClientConfig builds and validates the client configuration from the
// same sources as [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := loadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		AuthToken:      cfg.App.AuthToken,
		LogLevel:       cfg.App.LogLevel,
		Command:        rest,
	}

	return clientCfg, clientCfg.validate()
}
