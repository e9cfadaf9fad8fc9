package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/tavor-dev/tavor-go/internal/model"
)

// BoxConfigYAMLRepository loads box definitions from YAML files.
type BoxConfigYAMLRepository struct {
	fs fs.FS
}

// NewBoxConfigYAMLRepository creates a new YAML box definition repository.
func NewBoxConfigYAMLRepository(filesystem fs.FS) *BoxConfigYAMLRepository {
	return &BoxConfigYAMLRepository{fs: filesystem}
}

// GetBoxConfig loads a box definition from a YAML file and returns a validated domain model.
func (r *BoxConfigYAMLRepository) GetBoxConfig(ctx context.Context, path string) (model.BoxConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.BoxConfig{}, fmt.Errorf("reading box config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.BoxConfig{}, ctx.Err()
	}

	var cfg BoxConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.BoxConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.BoxConfig{}, fmt.Errorf("invalid configuration: %w: %w", err, model.ErrNotValid)
	}

	return cfg.toModel(), nil
}

// BoxConfig represents the YAML structure of a box definition.
type BoxConfig struct {
	Timeout  *int           `yaml:"timeout"`
	CPU      *int           `yaml:"cpu"`
	MiBRAM   *int           `yaml:"mib_ram"`
	Metadata map[string]any `yaml:"metadata"`
}

func (c BoxConfig) validate() error {
	if c.Timeout != nil && *c.Timeout < 0 {
		return fmt.Errorf("timeout can't be negative, got: %d", *c.Timeout)
	}
	if c.CPU != nil && *c.CPU <= 0 {
		return fmt.Errorf("cpu must be positive, got: %d", *c.CPU)
	}
	if c.MiBRAM != nil && *c.MiBRAM <= 0 {
		return fmt.Errorf("mib_ram must be positive, got: %d", *c.MiBRAM)
	}
	return nil
}

func (c BoxConfig) toModel() model.BoxConfig {
	return model.BoxConfig{
		Timeout:  c.Timeout,
		CPU:      c.CPU,
		MiBRAM:   c.MiBRAM,
		Metadata: c.Metadata,
	}
}
