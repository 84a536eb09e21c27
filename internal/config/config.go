// Package config holds the profile of a headless run: which image to
// execute, how to start the CPU, when to stop and what to record.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/thelolagemann/tomboy/internal/types"
)

// DefaultSteps bounds a run that doesn't halt or report a marker.
const DefaultSteps = 10_000_000

var (
	ErrNoImage      = errors.New("config: no image to run")
	ErrUnknownModel = errors.New("config: unknown model")
)

// Config is a run profile. Zero values mean "not set"; PC and SP are
// pointers so an explicit 0x0000 can be told apart from no override.
type Config struct {
	Image string `yaml:"image"`
	Boot  string `yaml:"boot"`
	Model string `yaml:"model"`

	// Load is the address the image is copied to.
	Load uint16  `yaml:"load"`
	PC   *uint16 `yaml:"pc"`
	SP   *uint16 `yaml:"sp"`

	// Steps is the instruction limit, 0 runs until halt or marker.
	Steps uint64 `yaml:"steps"`
	// Until stops the run once the serial output contains it.
	Until string `yaml:"until"`

	// Trace is a file to write trace lines to, "-" for stdout.
	Trace  string `yaml:"trace"`
	Ring   int    `yaml:"ring"`
	Digest bool   `yaml:"digest"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the profile used when no file is given.
func Default() *Config {
	return &Config{
		Steps:    DefaultSteps,
		Ring:     32,
		LogLevel: "info",
	}
}

// Load reads a YAML profile from path on top of Default. Unknown keys
// are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return c, nil
}

// ParseModel resolves the model name. The empty string and "unset"
// select the all-zero register file.
func (c *Config) ParseModel() (types.Model, error) {
	switch strings.ToLower(c.Model) {
	case "", "unset", "none":
		return types.Unset, nil
	}
	m := types.StringToModel(c.Model)
	if m == types.Unset {
		return types.Unset, fmt.Errorf("%w: %q", ErrUnknownModel, c.Model)
	}
	return m, nil
}

// Validate reports every problem with the profile at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Image == "" {
		result = multierror.Append(result, ErrNoImage)
	}
	if _, err := c.ParseModel(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Ring < 0 {
		result = multierror.Append(result, fmt.Errorf("config: ring size %d is negative", c.Ring))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("config: %w", err))
	}
	if c.Boot != "" && (c.PC != nil || c.SP != nil) {
		result = multierror.Append(result, errors.New("config: pc and sp can't be overridden when running a boot rom"))
	}

	return result.ErrorOrNil()
}
