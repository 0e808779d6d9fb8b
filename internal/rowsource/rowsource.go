// Package rowsource reads payment rows from the file formats the
// backoffice exports: CSV and XLSX. Both sources accept the same
// column names and deliver rows in file order, untouched; cleaning is
// the engine's job.
package rowsource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"tdv/nomina-txt/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Read dispatches on the file extension.
func Read(path string) ([]models.RowInput, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format '%s': expected .csv or .xlsx", ext)
	}
}
