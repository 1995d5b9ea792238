package config

import (
	"path/filepath"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/utils"
)

const (
	// OutputFormatGNU renders manifest lines in coreutils style ("<hex>  <path>").
	OutputFormatGNU = "gnu"
	// OutputFormatBSD renders manifest lines in BSD tag style ("MD5 (<path>) = <hex>").
	OutputFormatBSD = "bsd"
	// OutputFormatTemplate renders manifest lines through a user template.
	OutputFormatTemplate = "template"
)

const (
	DefaultAlgorithm    = "md5"
	DefaultOutputFormat = OutputFormatGNU
	DefaultBindAddress  = "127.0.0.1:8080"
	DefaultMaxBodyBytes = 10 << 20
)

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general" json:"general"`
	// API holds the HTTP API server configuration.
	API *APIConfig `toml:"api,omitempty" json:"api,omitempty"`
	// Index holds the digest index store configuration.
	Index *IndexConfig `toml:"index,omitempty" json:"index,omitempty"`
	// Watches lists filesystem targets whose digests are tracked. You can add multiple [[watch]] sections.
	Watches []*WatchTarget `toml:"watch,omitempty" json:"watch,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// DefaultAlgorithm is used when a command or request does not name one (default: md5).
	DefaultAlgorithm string `toml:"default_algorithm" json:"default_algorithm" validate:"omitempty,algorithm"`
	// OutputFormat selects the manifest line style: gnu, bsd or template (default: gnu).
	OutputFormat string `toml:"output_format" json:"output_format" validate:"omitempty,oneof=gnu bsd template"`
	// OutputTemplate is the line template used when output_format = "template". Available placeholders: {digest}, {path}, {algorithm}, {ALGORITHM}, {size}.
	OutputTemplate string `toml:"output_template,omitempty" json:"output_template,omitempty"`
}

type APIConfig struct {
	// BindAddress is the host:port the API server listens on (default: 127.0.0.1:8080).
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"hostport_or_empty"`
	// MaxBodyBytes caps the size of request bodies in bytes (default: 10485760).
	MaxBodyBytes int64 `toml:"max_body_bytes" json:"max_body_bytes" validate:"min=0"`
	// PrivateSubnetsOnly restricts API access to RFC1918/loopback/link-local clients (default: true).
	PrivateSubnetsOnly *bool `toml:"private_subnets_only,omitempty" json:"private_subnets_only,omitempty"`
}

type IndexConfig struct {
	// Dir is the BadgerDB directory for the digest index. Relative paths are resolved against the config file directory.
	Dir string `toml:"dir" json:"dir" validate:"required"`
}

type WatchTarget struct {
	// Path is the file or directory to watch. Relative paths are resolved against the config file directory.
	Path string `toml:"path" json:"path" validate:"required"`
	// Algorithms to compute for changed files (default: the general default algorithm).
	Algorithms []string `toml:"algorithms,omitempty" json:"algorithms,omitempty" validate:"omitempty,dive,algorithm"`
	// Recursive watches subdirectories of a directory target (default: false).
	Recursive bool `toml:"recursive" json:"recursive"`
	// UpdateIndex writes recomputed digests to the index store (default: false, requires [index]).
	UpdateIndex bool `toml:"update_index" json:"update_index"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsIndexDir resolves the index directory against the config location.
// It returns an empty string when no [index] section is configured.
func (c *Config) GetAbsIndexDir() string {
	if c.Index == nil || c.Index.Dir == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.Index.Dir, c.GetConfigDir())
}

// HasIndex reports whether an index store is configured.
func (c *Config) HasIndex() bool {
	return c.Index != nil && c.Index.Dir != ""
}

// GetDefaultAlgorithm returns the configured default algorithm. Validation
// guarantees the name parses; an unset value falls back to md5.
func (c *Config) GetDefaultAlgorithm() digest.Algorithm {
	if c.General == nil || c.General.DefaultAlgorithm == "" {
		return digest.MD5
	}
	algo, err := digest.Parse(c.General.DefaultAlgorithm)
	if err != nil {
		return digest.MD5
	}
	return algo
}

// GetAPIBindAddress returns the configured API bind address or the default.
func (c *Config) GetAPIBindAddress() string {
	if c.API == nil || c.API.BindAddress == "" {
		return DefaultBindAddress
	}
	return c.API.BindAddress
}

// GetMaxBodyBytes returns the API request body cap or the default.
func (c *Config) GetMaxBodyBytes() int64 {
	if c.API == nil || c.API.MaxBodyBytes == 0 {
		return DefaultMaxBodyBytes
	}
	return c.API.MaxBodyBytes
}

// IsPrivateSubnetsOnly reports whether API access is restricted to private
// subnets. Unset means restricted.
func (c *Config) IsPrivateSubnetsOnly() bool {
	if c.API == nil || c.API.PrivateSubnetsOnly == nil {
		return true
	}
	return *c.API.PrivateSubnetsOnly
}

// GetAbsolutePath resolves the watch target path against the config location.
func (w *WatchTarget) GetAbsolutePath(cfg *Config) string {
	return utils.GetAbsolutePath(w.Path, cfg.GetConfigDir())
}

// GetAlgorithms returns the parsed algorithm set for the target, falling
// back to the general default when none are listed.
func (w *WatchTarget) GetAlgorithms(cfg *Config) []digest.Algorithm {
	if len(w.Algorithms) == 0 {
		return []digest.Algorithm{cfg.GetDefaultAlgorithm()}
	}

	algos := make([]digest.Algorithm, 0, len(w.Algorithms))
	for _, name := range w.Algorithms {
		algo, err := digest.Parse(name)
		if err != nil {
			continue
		}
		algos = append(algos, algo)
	}
	if len(algos) == 0 {
		return []digest.Algorithm{cfg.GetDefaultAlgorithm()}
	}
	return algos
}
