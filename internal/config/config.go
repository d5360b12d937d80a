// Package config loads the optional YAML run configuration.
//
// Every field is optional. A nil pointer (or empty string) means "not set"
// so that the CLI can tell a zero value apart from an absent key.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the CLI flags that may be preset from a config file.
type File struct {
	Window            *int   `yaml:"window"`
	Fixture           *bool  `yaml:"fixture"`
	Strategy          string `yaml:"strategy"`
	RangeStrategy     string `yaml:"range_strategy"`
	Threads           *int   `yaml:"threads"`
	Jobs              *int   `yaml:"jobs"`
	Output            string `yaml:"output"`
	Header            *bool  `yaml:"header"`
	NoAnomalyExitCode *int   `yaml:"no_anomaly_exit_code"`
}

// Load reads and strictly decodes path. Unknown keys are an error.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes. An empty document yields a zero File.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("config: %w", err)
	}
	return f, nil
}
