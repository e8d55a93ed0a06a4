// 12 Oct 2026

package hbcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultGap is the gap penalty when neither the config file nor the
// command line give one.
const DefaultGap float32 = -2

// Config is everything a run needs. It can come from a yaml file like
//
//	matrix: blosum62.txt
//	gap: -4
//	ids: true
//
// and command line flags override whatever the file says.
type Config struct {
	Matrix   string  `yaml:"matrix"`                                   // empty means built in BLOSUM62
	Gap      float32 `yaml:"gap" validate:"lte=0"`                     // a penalty, never a reward
	Input    string  `yaml:"input"`                                    // empty means stdin
	Output   string  `yaml:"output" validate:"omitempty,nefield=Input"` // empty means stdout
	Exact    bool    `yaml:"exact"`
	PrintIDs bool    `yaml:"ids"`
	Verbose  bool    `yaml:"verbose"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing is said.
func Defaults() Config {
	return Config{Gap: DefaultGap}
}

// Validate checks the fields that can be checked before any file is opened.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}
	return nil
}

// LoadConfig reads a yaml file on top of the defaults. Unknown keys are
// an error, an empty file is not.
func LoadConfig(fname string) (Config, error) {
	cfg := Defaults()
	fp, err := os.Open(fname)
	if err != nil {
		return cfg, err
	}
	defer fp.Close()
	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", fname, err)
	}
	return cfg, nil
}
