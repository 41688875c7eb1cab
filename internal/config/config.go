// Package config holds the run configuration of the msd command. A
// configuration is read from a YAML file and can be completed or overridden
// by command-line flags before it is validated with Check.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-msd/dsp/corr"
)

// Errors returned by Check.
var (
	ErrMissingTraj     = errors.New("config: traj must be set")
	ErrInvalidBox      = errors.New("config: box must be positive when pbc is set")
	ErrInvalidTimeStep = errors.New("config: dt must be positive")
	ErrInvalidColumn   = errors.New("config: column must be non-negative")
	ErrInvalidFitRange = errors.New("config: fit range must satisfy 1 <= fitFrom < fitTo")
)

// Config is a structure containing the parameters of one MSD run. It can be
// decoded with New or Decode, or filled by hand; in the latter case call
// Check before using it.
type Config struct {
	// Traj is the text file holding the trajectory
	Traj string `yaml:"traj"`

	// Out is the file receiving the MSD table. Defaults to Traj + "_msd.out"
	Out string `yaml:"out"`

	// Column is the 0-based column of Traj holding the position
	Column int `yaml:"column"`

	// PBC specifies that Traj is folded into [0, Box) and must be unwrapped
	PBC bool `yaml:"pbc"`

	// Box is the periodic box size
	Box float64 `yaml:"box"`

	// Dt is the time between two samples in whatever unit you want
	Dt float64 `yaml:"dt"`

	// Backend is the FFT backend: algofft or gonum
	Backend string `yaml:"backend"`

	// FitFrom and FitTo bound the lag window of the diffusion fit. Both zero
	// disables the fit.
	FitFrom int `yaml:"fitFrom"`
	FitTo   int `yaml:"fitTo"`
}

// Default returns a Config with the default time step and backend.
func Default() Config {
	return Config{
		Dt:      1,
		Backend: corr.AlgoFFT.String(),
	}
}

// New opens and decodes the YAML configuration file at path, then checks
// it.
func New(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML configuration from r on top of Default and checks it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Check returns an error if a field doesn't meet the requirements.
func (c *Config) Check() error {
	if c.Traj == "" {
		return ErrMissingTraj
	}

	if c.PBC && !(c.Box > 0) {
		return ErrInvalidBox
	}

	if !(c.Dt > 0) {
		return ErrInvalidTimeStep
	}

	if c.Column < 0 {
		return ErrInvalidColumn
	}

	if c.FitFrom != 0 || c.FitTo != 0 {
		if c.FitFrom < 1 || c.FitTo <= c.FitFrom {
			return ErrInvalidFitRange
		}
	}

	if _, err := corr.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// CorrBackend returns the parsed FFT backend. It assumes Check passed.
func (c *Config) CorrBackend() corr.Backend {
	b, _ := corr.ParseBackend(c.Backend)
	return b
}

// Fit reports whether a diffusion fit window is configured.
func (c *Config) Fit() bool {
	return c.FitTo > 0
}

// OutPath returns Out, or the trajectory path with its extension replaced by
// "_msd.out" when Out is empty.
func (c *Config) OutPath() string {
	if c.Out != "" {
		return c.Out
	}
	ext := filepath.Ext(c.Traj)
	return strings.TrimSuffix(c.Traj, ext) + "_msd.out"
}
