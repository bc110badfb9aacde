// Package config holds the tool's configuration file handling.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name looked up in the config directory.
	ConfigurationName = "config.yaml"
)

// Configuration controls where history is read from and how reports are
// rendered.
type Configuration struct {
	// HistoryPath is the shell history file to analyze. A leading "~/" is
	// expanded to the user's home directory.
	HistoryPath string `json:"history_path" validate:"required"`

	// TopN is how many programs reports show.
	TopN int `json:"top_n" validate:"gte=1,lte=100"`

	// ListenAddr is the bind address of the chart server.
	ListenAddr string `json:"listen_addr" validate:"required"`

	// IgnorePrograms are program names excluded from reports, e.g. "cd".
	IgnorePrograms []string `json:"ignore_programs" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration. It panics on failure because
// the embedded default must always parse.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
