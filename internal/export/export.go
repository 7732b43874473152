// Package export writes report views to delimited-text files and a
// spreadsheet workbook, keeping the per-view display column layout.
package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/iwvelando/loan-analysis/internal/report"
	"github.com/iwvelando/loan-analysis/pkg/constants"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// csvFileNames maps view keys to their delimited-text export names. These
// names are part of the external contract.
var csvFileNames = map[string]string{
	report.ViewAll:        constants.ExportFileAllLoans,
	report.ViewDefaulters: constants.ExportFileDefaulters,
	report.ViewCurrent:    constants.ExportFileCurrent,
	report.ViewFullyPaid:  constants.ExportFileFullyPaid,
	report.ViewHighRisk:   constants.ExportFileHighRisk,
}

// Writer writes report views into a target directory, creating it on demand.
type Writer struct {
	logger *zap.Logger
	dir    string
}

// NewWriter creates a writer rooted at dir.
func NewWriter(logger *zap.Logger, dir string) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		logger: logger,
		dir:    dir,
	}
}

// Write exports every view of the report in each requested format and
// returns the paths written.
func (w *Writer) Write(result *report.Report, formats []string) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", w.dir, err)
	}

	var paths []string
	for _, format := range formats {
		switch format {
		case constants.ExportFormatCSV:
			written, err := w.WriteCSV(result)
			if err != nil {
				return paths, err
			}
			paths = append(paths, written...)
		case constants.ExportFormatXLSX:
			written, err := w.WriteWorkbook(result)
			if err != nil {
				return paths, err
			}
			paths = append(paths, written)
		default:
			return paths, fmt.Errorf("unsupported export format %s", format)
		}
	}
	return paths, nil
}

// WriteCSV writes one delimited-text file per view and returns the paths.
func (w *Writer) WriteCSV(result *report.Report) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", w.dir, err)
	}

	paths := make([]string, 0, len(result.Views))
	for _, view := range result.Views {
		name, ok := csvFileNames[view.Key]
		if !ok {
			return paths, fmt.Errorf("no export file name for view %s", view.Key)
		}

		path := filepath.Join(w.dir, name)
		if err := writeViewCSV(view, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		w.logger.Debug(fmt.Sprintf("exported %d records to %s", len(view.Records), path),
			zap.String("op", "export.Writer.WriteCSV"),
		)
	}
	return paths, nil
}

func writeViewCSV(view report.View, path string) error {
	header := make([]string, len(view.Columns))
	for i, col := range view.Columns {
		header[i] = string(col)
	}

	// Dataframes refuse to load without data rows; an empty view still gets
	// its header line.
	if len(view.Records) == 0 {
		if err := os.WriteFile(path, []byte(strings.Join(header, ",")+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write export file %s: %w", path, err)
		}
		return nil
	}

	rows := make([][]string, 0, len(view.Records)+1)
	rows = append(rows, header)
	for _, rec := range view.Records {
		row := make([]string, len(view.Columns))
		for i, col := range view.Columns {
			row[i] = rec.Value(col)
		}
		rows = append(rows, row)
	}

	df := dataframe.LoadRecords(rows,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("failed to frame view %s: %w", view.Key, df.Err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook writes all views into one spreadsheet, one sheet per view,
// and returns the path.
func (w *Writer) WriteWorkbook(result *report.Report) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", w.dir, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, view := range result.Views {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", view.Title); err != nil {
				return "", fmt.Errorf("failed to name sheet %s: %w", view.Title, err)
			}
		} else {
			if _, err := f.NewSheet(view.Title); err != nil {
				return "", fmt.Errorf("failed to create sheet %s: %w", view.Title, err)
			}
		}

		for c, col := range view.Columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			f.SetCellValue(view.Title, cell, string(col))
		}
		for r, rec := range view.Records {
			for c, col := range view.Columns {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if v, ok := rec.Numeric(col); ok {
					if math.IsNaN(v) {
						continue // leave missing numerics blank
					}
					f.SetCellValue(view.Title, cell, v)
					continue
				}
				f.SetCellValue(view.Title, cell, rec.Value(col))
			}
		}
	}

	path := filepath.Join(w.dir, constants.ExportFileWorkbook)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	w.logger.Debug(fmt.Sprintf("exported workbook with %d sheets to %s", len(result.Views), path),
		zap.String("op", "export.Writer.WriteWorkbook"),
	)
	return path, nil
}
