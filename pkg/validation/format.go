// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-analysis/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateExportFormats checks that every requested export format is supported.
func ValidateExportFormats(formats []string) error {
	for _, format := range formats {
		if format != constants.ExportFormatCSV && format != constants.ExportFormatXLSX {
			return fmt.Errorf("expected export format of %s or %s, got %s",
				constants.ExportFormatCSV, constants.ExportFormatXLSX, format)
		}
	}
	return nil
}
