package rowsource

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tdv/nomina-txt/internal/models"
)

// ReadXLSX reads payment rows from the first sheet of an XLSX workbook.
// The first row must be a header carrying the same column names the CSV
// source uses; unknown columns are ignored and fully empty rows are
// skipped.
func ReadXLSX(path string) ([]models.RowInput, error) {
	log.WithField("file", path).Info("Reading XLSX rows")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet '%s': %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet '%s' has no header row", sheets[0])
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []models.RowInput
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := models.RowInput{}
		for i, val := range record {
			if i >= len(header) {
				break
			}
			switch header[i] {
			case "rut_proveedor":
				row.ProviderRUT = val
			case "nombre_proveedor":
				row.ProviderName = val
			case "banco":
				row.BankName = val
			case "cuenta":
				row.Account = val
			case "tipo_documento":
				row.DocumentTypeName = val
			case "numero_documento":
				row.DocumentNumber = val
			case "monto":
				row.Amount = val
			case "forma_pago":
				row.PaymentMethodName = val
			case "sucursal":
				row.BranchCode = val
			case "email":
				row.Email = val
			case "mensaje":
				row.Message = val
			}
		}
		rows = append(rows, row)
	}

	log.WithField("count", len(rows)).Info("Read XLSX rows")
	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, val := range record {
		if strings.TrimSpace(val) != "" {
			return false
		}
	}
	return true
}
