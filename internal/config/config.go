package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hashbox/hashbox/internal/log"
)

// Default returns the built-in configuration used when no config file is
// given. All commands work against it out of the box: md5 digests, GNU
// manifest lines, loopback-only API, no index and no watch targets.
func Default() *Config {
	return &Config{
		ConfigVersion: 1,
		General: &GeneralConfig{
			DefaultAlgorithm: DefaultAlgorithm,
			OutputFormat:     DefaultOutputFormat,
		},
		API: &APIConfig{
			BindAddress:  DefaultBindAddress,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	if config.HasIndex() {
		log.Debugf("Index store directory: %s", config.GetAbsIndexDir())
	}

	return &config, nil
}

// applyDefaults fills unset general and API fields so callers never see a
// nil section or an empty required default.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.DefaultAlgorithm == "" {
		c.General.DefaultAlgorithm = DefaultAlgorithm
	}
	if c.General.OutputFormat == "" {
		c.General.OutputFormat = DefaultOutputFormat
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.BindAddress == "" {
		c.API.BindAddress = DefaultBindAddress
	}
	if c.API.MaxBodyBytes == 0 {
		c.API.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}

func (c *Config) UpgradeConfig() (bool, error) {
	upgraded := false

	if c.ConfigVersion == 0 {
		c.ConfigVersion = 1

		log.Infof("Upgrading configuration to version 1")
		upgraded = true
	}

	return upgraded, nil
}
