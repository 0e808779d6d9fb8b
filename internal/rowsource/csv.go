package rowsource

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"tdv/nomina-txt/internal/models"
)

// ReadCSV reads payment rows from a CSV file with a header row naming
// the columns declared by the RowInput csv tags.
func ReadCSV(path string) ([]models.RowInput, error) {
	log.WithField("file", path).Info("Reading CSV rows")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []models.RowInput
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Read CSV rows")
	return rows, nil
}
