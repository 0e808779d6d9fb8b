package nomina

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/models"
)

// Generate runs the full pipeline and renders the payment file. It has
// exactly two outcomes: a complete GeneratedFile or an error; there is
// no partial state to resume from. Callers that want the full finding
// list should run Validate first — Generate aborts on the first one.
func Generate(header models.HeaderInput, rows []models.RowInput, resolver *catalog.Resolver, grouped bool) (models.GeneratedFile, error) {
	result := Validate(header, rows, resolver)
	if !result.Valid {
		return models.GeneratedFile{}, fmt.Errorf("la nomina no es valida: %s", result.Errors[0])
	}

	normHeader, err := NormalizeHeader(header)
	if err != nil {
		return models.GeneratedFile{}, err
	}
	normRows := make([]models.NormalizedRow, 0, len(rows))
	for _, row := range rows {
		norm, err := NormalizeRow(row, resolver)
		if err != nil {
			return models.GeneratedFile{}, err
		}
		normRows = append(normRows, norm)
	}

	var (
		mode      models.Mode
		lines     []string
		total     decimal.Decimal
		lineCount int
	)
	if grouped {
		mode = models.ModeGrouped
		groups, err := Group(normRows)
		if err != nil {
			return models.GeneratedFile{}, err
		}
		total = decimal.Zero
		for _, g := range groups {
			total = total.Add(g.NetAmount)
		}
		lineCount = 1 + len(groups) + len(normRows)
		headerLine, err := buildHeaderLine(normHeader, lineCount, total)
		if err != nil {
			return models.GeneratedFile{}, err
		}
		lines = append(lines, headerLine)
		for _, g := range groups {
			accountLine, err := buildAccountLine(g.Leader, g.NetAmount, g.Message)
			if err != nil {
				return models.GeneratedFile{}, err
			}
			lines = append(lines, accountLine)
			for _, row := range g.Rows {
				docLine, err := buildDocumentLine(row)
				if err != nil {
					return models.GeneratedFile{}, err
				}
				lines = append(lines, docLine)
			}
		}
	} else {
		mode = models.ModeFlat
		total = decimal.Zero
		for _, row := range normRows {
			total = total.Add(row.Amount)
		}
		lineCount = 1 + 2*len(normRows)
		headerLine, err := buildHeaderLine(normHeader, lineCount, total)
		if err != nil {
			return models.GeneratedFile{}, err
		}
		lines = append(lines, headerLine)
		for _, row := range normRows {
			accountLine, err := buildAccountLine(row, row.Amount, row.Message)
			if err != nil {
				return models.GeneratedFile{}, err
			}
			docLine, err := buildDocumentLine(row)
			if err != nil {
				return models.GeneratedFile{}, err
			}
			lines = append(lines, accountLine, docLine)
		}
	}

	file := models.GeneratedFile{
		FileName:    fileName(normHeader, mode),
		Content:     strings.Join(lines, "\r\n"),
		LineCount:   lineCount,
		TotalAmount: total,
		Mode:        mode,
	}
	log.WithFields(logrus.Fields{
		"file":  file.FileName,
		"lines": file.LineCount,
		"total": file.TotalAmount.StringFixed(0),
		"mode":  string(file.Mode),
	}).Info("Nomina generated")
	return file, nil
}

func fileName(header models.NormalizedHeader, mode models.Mode) string {
	return fmt.Sprintf("nomina_%s_%s_%s.txt", header.Agreement, header.ProcessDate.Format(compactDateLayout), mode)
}
