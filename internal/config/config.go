// Package config loads the hgeom configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	hilbert "github.com/alamminsalo/hilbert-geometry"
	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
)

// Config holds serializer settings shared by the hgeom commands.
// Zero values mean "not set".
type Config struct {
	Compression string  `yaml:"compression,omitempty"`
	Simplify    float64 `yaml:"simplify,omitempty"` // Douglas-Peucker tolerance in degrees
	Precision   uint8   `yaml:"precision,omitempty"`
	Checksum    bool    `yaml:"checksum,omitempty"`
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Merge returns c with every field that is set in override replaced.
func (c Config) Merge(override Config) Config {
	if override.Compression != "" {
		c.Compression = override.Compression
	}
	if override.Simplify != 0 {
		c.Simplify = override.Simplify
	}
	if override.Precision != 0 {
		c.Precision = override.Precision
	}
	if override.Checksum {
		c.Checksum = true
	}

	return c
}

// SerializerOptions converts the settings into serializer options.
func (c Config) SerializerOptions() ([]hilbert.SerializerOption, error) {
	var opts []hilbert.SerializerOption

	if c.Precision != 0 {
		opts = append(opts, hilbert.WithPrecision(c.Precision))
	}

	if c.Compression != "" {
		compression, ok := format.ParseCompression(c.Compression)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Compression)
		}
		opts = append(opts, hilbert.WithCompression(compression))
	}

	if c.Checksum {
		opts = append(opts, hilbert.WithChecksum(true))
	}

	return opts, nil
}

// Serializer builds a serializer from the settings.
func (c Config) Serializer() (*hilbert.Serializer, error) {
	opts, err := c.SerializerOptions()
	if err != nil {
		return nil, err
	}

	return hilbert.NewSerializer(opts...)
}
