package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	watchDir := filepath.Join(tmpDir, "data")
	if err := os.MkdirAll(watchDir, 0755); err != nil {
		t.Fatalf("Failed to create watch dir: %v", err)
	}

	config := &Config{
		General: &GeneralConfig{
			DefaultAlgorithm: "sha256",
			OutputFormat:     OutputFormatGNU,
		},
		API: &APIConfig{
			BindAddress:  "127.0.0.1:8080",
			MaxBodyBytes: 1 << 20,
		},
		Index: &IndexConfig{
			Dir: "index",
		},
		Watches: []*WatchTarget{
			{
				Path:        watchDir,
				Algorithms:  []string{"md5", "sha256"},
				Recursive:   true,
				UpdateIndex: true,
			},
		},
		_absConfigFilePath: filepath.Join(tmpDir, "hashbox.conf"),
	}

	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_MissingGeneral(t *testing.T) {
	config := &Config{}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for missing general config")
	}
}

func TestValidateConfig_UnknownAlgorithm(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{
			DefaultAlgorithm: "crc32",
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for unknown algorithm")
	}

	if !strings.Contains(err.Error(), "general.default_algorithm") {
		t.Errorf("Expected field path in error, got: %v", err)
	}
}

func TestValidateConfig_UnknownOutputFormat(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{
			OutputFormat: "yaml",
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestValidateConfig_TemplateFormatWithoutTemplate(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{
			OutputFormat: OutputFormatTemplate,
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for template format without template")
	}

	if !strings.Contains(err.Error(), "general.output_template") {
		t.Errorf("Expected output_template field path in error, got: %v", err)
	}
}

func TestValidateConfig_TemplateFormatWithTemplate(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{
			OutputFormat:   OutputFormatTemplate,
			OutputTemplate: "{digest} {path}",
		},
	}

	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_InvalidBindAddress(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{},
		API: &APIConfig{
			BindAddress: "not-a-hostport",
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for invalid bind address")
	}

	if !strings.Contains(err.Error(), "api.bind_address") {
		t.Errorf("Expected bind_address field path in error, got: %v", err)
	}
}

func TestValidateConfig_NegativeMaxBodyBytes(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{},
		API: &APIConfig{
			MaxBodyBytes: -1,
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for negative max body bytes")
	}
}

func TestValidateConfig_EmptyIndexDir(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{},
		Index:   &IndexConfig{},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for empty index dir")
	}
}

func TestValidateWatches_MissingPath(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{},
		Watches: []*WatchTarget{
			{},
		},
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for watch target without path")
	}
}

func TestValidateWatches_DuplicatePaths(t *testing.T) {
	tmpDir := t.TempDir()

	config := &Config{
		General: &GeneralConfig{},
		Watches: []*WatchTarget{
			{Path: tmpDir},
			{Path: tmpDir},
		},
		_absConfigFilePath: filepath.Join(tmpDir, "hashbox.conf"),
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for duplicate watch paths")
	}

	if !strings.Contains(err.Error(), "duplicate watch path") {
		t.Errorf("Expected duplicate path message, got: %v", err)
	}
}

func TestValidateWatches_NonExistentPath(t *testing.T) {
	tmpDir := t.TempDir()

	config := &Config{
		General: &GeneralConfig{},
		Watches: []*WatchTarget{
			{Path: filepath.Join(tmpDir, "missing")},
		},
		_absConfigFilePath: filepath.Join(tmpDir, "hashbox.conf"),
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for non-existent watch path")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected existence message, got: %v", err)
	}
}

func TestValidateWatches_UpdateIndexWithoutIndex(t *testing.T) {
	tmpDir := t.TempDir()

	config := &Config{
		General: &GeneralConfig{},
		Watches: []*WatchTarget{
			{Path: tmpDir, UpdateIndex: true},
		},
		_absConfigFilePath: filepath.Join(tmpDir, "hashbox.conf"),
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for update_index without [index] section")
	}

	if !strings.Contains(err.Error(), "update_index") {
		t.Errorf("Expected update_index field path in error, got: %v", err)
	}
}

func TestValidateWatches_UnknownAlgorithm(t *testing.T) {
	tmpDir := t.TempDir()

	config := &Config{
		General: &GeneralConfig{},
		Watches: []*WatchTarget{
			{Path: tmpDir, Algorithms: []string{"md5", "whirlpool"}},
		},
		_absConfigFilePath: filepath.Join(tmpDir, "hashbox.conf"),
	}

	err := config.ValidateConfig()
	if err == nil {
		t.Error("Expected error for unknown watch algorithm")
	}
}

func TestValidationErrors_ErrorFormat(t *testing.T) {
	errs := ValidationErrors{
		{FieldPath: "general.default_algorithm", Message: "must be a supported algorithm (md5, sha1, sha256, sha512)"},
		{ItemName: "/var/data", FieldPath: "path", Message: "path does not exist: /var/data"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 error(s)") {
		t.Errorf("Expected error count in message, got: %s", msg)
	}
	if !strings.Contains(msg, "[/var/data]") {
		t.Errorf("Expected item name in message, got: %s", msg)
	}
}
