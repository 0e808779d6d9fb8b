package nomina

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/rut"
)

const (
	lineLength = 263

	recordFileHeader = "00"
	recordAccount    = "10"
	recordDocument   = "20"

	// headerMarker is the fixed format-version token the receiving
	// system expects at the end of the header record.
	headerMarker = "00001"

	compactDateLayout = "20060102"
)

// padLeft pads with fill on the left. When the value is longer than the
// field it keeps the RIGHTMOST width characters; numeric fields drop
// their most significant overflow. Both pads count runes, not bytes.
func padLeft(s string, width int, fill rune) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[len(runes)-width:])
	}
	return strings.Repeat(string(fill), width-len(runes)) + s
}

// padRight pads with fill on the right. When the value is longer than
// the field it keeps the LEFTMOST width characters; text fields drop
// their tail.
func padRight(s string, width int, fill rune) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(string(fill), width-len(runes))
}

func checkLength(recordType, line string) (string, error) {
	if n := utf8.RuneCountInString(line); n != lineLength {
		return "", &LineLengthError{RecordType: recordType, Length: n}
	}
	return line, nil
}

// buildHeaderLine renders the single "00" record: company RUT,
// agreement, compact date, the file's line count and total amount, and
// the format marker, space-filled to the full width.
func buildHeaderLine(header models.NormalizedHeader, lineCount int, total decimal.Decimal) (string, error) {
	companyRUT, err := rut.FormatFixedWidth10(header.CompanyRUT)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(recordFileHeader)
	b.WriteString(companyRUT)
	b.WriteString(padLeft(header.Agreement, 3, '0'))
	b.WriteString(header.ProcessDate.Format(compactDateLayout))
	b.WriteString(padLeft(strconv.Itoa(lineCount), 5, '0'))
	b.WriteString(padLeft(total.StringFixed(0), 12, '0'))
	b.WriteString(headerMarker)
	return checkLength(recordFileHeader, padRight(b.String(), lineLength, ' '))
}

// buildAccountLine renders a "10" record. amount and message are passed
// in because grouped mode substitutes the group's net amount and
// composite message for the row's own values.
func buildAccountLine(row models.NormalizedRow, amount decimal.Decimal, message string) (string, error) {
	providerRUT, err := rut.FormatFixedWidth10(row.ProviderRUT)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(recordAccount)
	b.WriteString(providerRUT)
	b.WriteString(padRight(row.ProviderName, 40, ' '))
	b.WriteString(strings.Repeat(" ", 94)) // reserved
	b.WriteString(padRight(row.Email, 40, ' '))
	b.WriteString(padRight(row.PaymentMethod.Code, 2, ' '))
	b.WriteString(padLeft(row.Account, 16, '0'))
	b.WriteString(padLeft(row.Bank.Code, 3, '0'))
	b.WriteString(padLeft(row.BranchCode, 3, '0'))
	b.WriteString(padLeft(amount.StringFixed(0), 12, '0'))
	b.WriteString(padRight(message, 40, ' '))
	b.WriteString("S")
	return checkLength(recordAccount, b.String())
}

// buildDocumentLine renders a "20" record. It always carries the row's
// own amount, in both output modes.
func buildDocumentLine(row models.NormalizedRow) (string, error) {
	providerRUT, err := rut.FormatFixedWidth10(row.ProviderRUT)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(recordDocument)
	b.WriteString(padRight(row.DocumentType.Code, 2, ' '))
	b.WriteString(padLeft(row.DocumentNumber, 12, '0'))
	b.WriteString(providerRUT)
	b.WriteString(padRight(row.ProviderName, 40, ' '))
	b.WriteString(padRight(row.Message, 40, ' '))
	b.WriteString(padLeft(row.Amount.StringFixed(0), 12, '0'))
	b.WriteString(strings.Repeat(" ", 145))
	return checkLength(recordDocument, b.String())
}
