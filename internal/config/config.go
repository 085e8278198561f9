// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/pension"
	"github.com/iwvelando/pension-calculator/pkg/reference"
	"github.com/iwvelando/pension-calculator/pkg/validation"
)

// Viper keys.
const (
	KeyMonthlySalary     = "inputs.monthlySalary"
	KeyContributionYears = "inputs.contributionYears"
	KeyRetirementAge     = "inputs.retirementAge"
	KeyCity              = "inputs.city"
	KeyAverageSalary     = "inputs.averageSalary"
	KeyLogLevel          = "logging.level"
	KeyLogFormat         = "logging.format"
	KeyLogOutputFile     = "logging.outputFile"
	KeyOutputFormat      = "output.format"
)

// Configuration holds all configuration for pension-calculator.
type Configuration struct {
	Inputs  InputsConfig  `mapstructure:"inputs" yaml:"inputs"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
}

// InputsConfig holds the values the calculator form starts with.
// An empty City with a positive AverageSalary selects a custom average.
type InputsConfig struct {
	MonthlySalary     float64 `mapstructure:"monthlySalary" yaml:"monthlySalary"`
	ContributionYears int     `mapstructure:"contributionYears" yaml:"contributionYears"`
	RetirementAge     int     `mapstructure:"retirementAge" yaml:"retirementAge"`
	City              string  `mapstructure:"city" yaml:"city,omitempty"`
	AverageSalary     float64 `mapstructure:"averageSalary" yaml:"averageSalary,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// NewViper returns a viper instance carrying the built-in defaults and the
// PENSION_* environment overrides (e.g. PENSION_INPUTS_MONTHLYSALARY).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault(KeyMonthlySalary, constants.DefaultMonthlySalary)
	v.SetDefault(KeyContributionYears, constants.DefaultContributionYears)
	v.SetDefault(KeyRetirementAge, constants.DefaultRetirementAge)
	v.SetDefault(KeyCity, "")
	v.SetDefault(KeyAverageSalary, 0.0)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFormat, "")
	v.SetDefault(KeyLogOutputFile, "")
	v.SetDefault(KeyOutputFormat, constants.OutputFormatPretty)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	return Load(NewViper(), configPath, true)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := NewViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

// Load reads configPath into v and decodes the result. When required is
// false a missing file is not an error and the defaults (plus environment
// and any flags bound to v) are used.
func Load(v *viper.Viper, configPath string, required bool) (*Configuration, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				return decode(v)
			}
			return nil, fmt.Errorf("error reading config file, %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Source returns the average-salary source the configured inputs select.
func (c InputsConfig) Source() reference.AverageSalarySource {
	return reference.SourceFor(c.City, c.AverageSalary)
}

// ToInputs resolves the configured inputs against tables.
func (c InputsConfig) ToInputs(tables *reference.Tables) (pension.Inputs, error) {
	if tables == nil {
		tables = reference.Default()
	}
	average, city, err := c.Source().Resolve(tables)
	if err != nil {
		return pension.Inputs{}, fmt.Errorf("failed to resolve average salary: %w", err)
	}
	return pension.Inputs{
		MonthlySalary:     c.MonthlySalary,
		ContributionYears: c.ContributionYears,
		RetirementAge:     c.RetirementAge,
		AverageSalary:     average,
		City:              city,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Inputs.City != "" && c.Inputs.City != constants.CustomCity && c.Inputs.AverageSalary > 0 {
		warnings = append(warnings, fmt.Sprintf("averageSalary %.2f is ignored because city %q is set",
			c.Inputs.AverageSalary, c.Inputs.City))
	}

	in, err := c.Inputs.ToInputs(nil)
	if err != nil {
		return append(warnings, err.Error())
	}
	if err := validation.ValidateInputs(in); err != nil {
		warnings = append(warnings, err.Error())
	}
	warnings = append(warnings, validation.InputWarnings(in, nil)...)

	return warnings
}

// Export renders the configuration as YAML.
func (c *Configuration) Export() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return out, nil
}
