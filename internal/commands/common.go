package commands

import (
	"fmt"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/store"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    string
	Commit     string
	Date       string
}

// loadConfigOrDefault loads the configuration file, or returns the built-in
// defaults when no path is set. Every command works without a config file.
func loadConfigOrDefault(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	return cfg, nil
}

// loadAndValidateConfigOrFail loads configuration and validates it.
// Commands that only print the configuration skip validation and use
// loadConfigOrDefault directly.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := loadConfigOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// openStoreIfConfigured opens the index store when an [index] section
// exists. Callers get nil without error when no index is configured.
func openStoreIfConfigured(cfg *config.Config) (*store.Store, error) {
	if !cfg.HasIndex() {
		return nil, nil
	}
	return store.Open(cfg.GetAbsIndexDir())
}
