package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v2"
)

// LoadFile loads a configuration document from path. The format is selected
// by extension (.hcl, .json, .yaml/.yml); for unknown extensions HCL is
// tried first, then JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(data, path)
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		cfg, err := LoadHCL(data, path)
		if err != nil {
			return LoadJSON(data)
		}
		return cfg, nil
	}
}

// LoadHCL decodes an HCL document.
func LoadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, newError(KindParse, "", "HCL parse error: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, newError(KindParse, "", "HCL decode error: %s", diags.Error())
	}
	return &cfg, nil
}

// LoadJSON decodes a JSON document.
func LoadJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, newError(KindParse, "", "JSON parse error: %v", err)
	}
	return &cfg, nil
}

// LoadYAML decodes a YAML document.
func LoadYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, newError(KindParse, "", "YAML parse error: %v", err)
	}
	return &cfg, nil
}

// GenerateJSON returns the canonical JSON serialization of the document.
func GenerateJSON(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveFile writes the document to path, JSON or HCL by extension.
func SaveFile(cfg *Config, path string) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		data = GenerateHCL(cfg)
	default:
		var err error
		if data, err = GenerateJSON(cfg); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
