// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-analysis/internal/cohort"
	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/pkg/constants"
	"github.com/iwvelando/loan-analysis/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-analysis.
type Configuration struct {
	Dataset   DatasetConfig   `yaml:"dataset"`
	Risk      RiskConfig      `yaml:"risk,omitempty"`
	Filters   FilterConfig    `yaml:"filters,omitempty"`
	Histogram HistogramConfig `yaml:"histogram,omitempty"`
	Export    ExportConfig    `yaml:"export,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
}

// DatasetConfig points at the loan record file.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch,omitempty"` // reload when the file changes
}

// RiskConfig overrides the high-risk thresholds. Unset fields keep their
// defaults.
type RiskConfig struct {
	MaxInterestRate  *float64 `yaml:"maxInterestRate,omitempty"`
	MaxDTI           *float64 `yaml:"maxDti,omitempty"`
	MaxDelinquencies *float64 `yaml:"maxDelinquencies,omitempty"`
}

// FilterConfig pre-filters the record set before any view is built.
type FilterConfig struct {
	JobTitle string   `yaml:"jobTitle,omitempty"`
	Statuses []string `yaml:"statuses,omitempty"`
	States   []string `yaml:"states,omitempty"`
}

// HistogramConfig controls the interest rate distribution.
type HistogramConfig struct {
	Bins int `yaml:"bins,omitempty"`
}

// ExportConfig controls which view files get written and where.
type ExportConfig struct {
	Directory string   `yaml:"directory,omitempty"`
	Formats   []string `yaml:"formats,omitempty"` // csv, xlsx
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// arbitrary reader. Unlike LoadConfiguration it leaves the global viper state
// untouched.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Thresholds merges the configured risk overrides with the defaults.
func (r RiskConfig) Thresholds() cohort.Thresholds {
	thresholds := cohort.DefaultThresholds()
	if r.MaxInterestRate != nil {
		thresholds.MaxInterestRate = *r.MaxInterestRate
	}
	if r.MaxDTI != nil {
		thresholds.MaxDTI = *r.MaxDTI
	}
	if r.MaxDelinquencies != nil {
		thresholds.MaxDelinquencies = *r.MaxDelinquencies
	}
	return thresholds
}

// Criteria converts the configured filters into engine criteria.
func (f FilterConfig) Criteria() cohort.Criteria {
	return cohort.Criteria{
		JobTitleContains: f.JobTitle,
		StatusIn:         f.Statuses,
		StateIn:          f.States,
	}
}

// BinCount returns the configured histogram bin count or the default when
// unset.
func (h HistogramConfig) BinCount() int {
	if h.Bins <= 0 {
		return constants.DefaultHistogramBins
	}
	return h.Bins
}

// OutputDirectory returns the configured export directory, defaulting to the
// working directory.
func (e ExportConfig) OutputDirectory() string {
	if e.Directory == "" {
		return "."
	}
	return e.Directory
}

// Enabled reports whether any export format is configured.
func (e ExportConfig) Enabled() bool {
	return len(e.Formats) > 0
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Dataset.Path == "" {
		warnings = append(warnings, "dataset path is not set; loading will fail")
	}
	if c.Risk.MaxInterestRate != nil && *c.Risk.MaxInterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("risk maxInterestRate %.2f is negative; every record with a rate will be high risk", *c.Risk.MaxInterestRate))
	}
	if c.Risk.MaxDTI != nil && *c.Risk.MaxDTI < 0 {
		warnings = append(warnings, fmt.Sprintf("risk maxDti %.2f is negative; every record with a DTI will be high risk", *c.Risk.MaxDTI))
	}
	if c.Risk.MaxDelinquencies != nil && *c.Risk.MaxDelinquencies < 0 {
		warnings = append(warnings, fmt.Sprintf("risk maxDelinquencies %.2f is negative; every record with a delinquency count will be high risk", *c.Risk.MaxDelinquencies))
	}
	if c.Histogram.Bins < 0 {
		warnings = append(warnings, fmt.Sprintf("histogram bins %d is negative; using the default of %d", c.Histogram.Bins, constants.DefaultHistogramBins))
	}

	known := make(map[string]bool)
	for _, status := range dataset.KnownStatuses() {
		known[status] = true
	}
	for _, status := range c.Filters.Statuses {
		if !known[status] {
			warnings = append(warnings, fmt.Sprintf("filter status %q is not a standard loan status; it only matches records that carry it verbatim", status))
		}
	}

	if err := validation.ValidateExportFormats(c.Export.Formats); err != nil {
		warnings = append(warnings, fmt.Sprintf("export formats invalid: %s; exports will be skipped", err))
	}

	return warnings
}
