package nomina

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/textutils"
)

// SortRows returns a copy of rows stable-sorted by account, document
// type name and document number. All three keys compare as strings, so
// document number "9" sorts after "10"; the receiving bank system
// depends on this ordinal order.
func SortRows(rows []models.NormalizedRow) []models.NormalizedRow {
	sorted := make([]models.NormalizedRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Account != b.Account {
			return a.Account < b.Account
		}
		if a.DocumentType.Name != b.DocumentType.Name {
			return a.DocumentType.Name < b.DocumentType.Name
		}
		return a.DocumentNumber < b.DocumentNumber
	})
	return sorted
}

// Group sorts rows and buckets the ones sharing an account into a
// single consolidated record. Credit notes subtract from the net; a
// group whose credit notes exceed its charges cannot be paid and
// aborts the run with a *NegativeNetError.
func Group(rows []models.NormalizedRow) ([]models.GroupedRow, error) {
	sorted := SortRows(rows)

	var groups []models.GroupedRow
	for _, row := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Account == row.Account {
			groups[n-1].Rows = append(groups[n-1].Rows, row)
			continue
		}
		groups = append(groups, models.GroupedRow{
			Account: row.Account,
			Leader:  row,
			Rows:    []models.NormalizedRow{row},
		})
	}

	for i := range groups {
		net := decimal.Zero
		for _, row := range groups[i].Rows {
			if row.DocumentType.Name == catalog.DocTypeCreditNote {
				net = net.Sub(row.Amount)
			} else {
				net = net.Add(row.Amount)
			}
		}
		if net.IsNegative() {
			return nil, &NegativeNetError{Account: groups[i].Account, Net: net.StringFixed(0)}
		}
		groups[i].NetAmount = net
		groups[i].Message = compositeMessage(groups[i].Rows)
	}
	return groups, nil
}

// compositeMessage builds the consolidated message: the leading
// document spelled out, then each further document number reduced to
// its digits (raw number when it has none), dash-joined with no
// separator before the dash.
func compositeMessage(rows []models.NormalizedRow) string {
	first := rows[0]
	var b strings.Builder
	b.WriteString("Pago ")
	b.WriteString(first.DocumentType.Name)
	b.WriteString(" ")
	b.WriteString(first.DocumentNumber)
	for _, row := range rows[1:] {
		digits := textutils.DigitsOnly(row.DocumentNumber)
		if digits == "" {
			digits = row.DocumentNumber
		}
		b.WriteString("-")
		b.WriteString(digits)
	}
	return b.String()
}
