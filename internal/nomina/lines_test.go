package nomina

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdv/nomina-txt/internal/models"
)

func TestPadLeftKeepsRightmost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"Pads short value", "123", 5, "00123"},
		{"Exact width untouched", "12345", 5, "12345"},
		{"Overflow keeps rightmost", "9876543", 5, "76543"},
		{"Empty", "", 3, "000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, padLeft(tc.input, tc.width, '0'))
		})
	}
}

func TestPadRightKeepsLeftmost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"Pads short value", "AB", 4, "AB  "},
		{"Exact width untouched", "ABCD", 4, "ABCD"},
		{"Overflow keeps leftmost", "ABCDEFG", 4, "ABCD"},
		{"Multibyte runes count as one", "ÑAND", 5, "ÑAND "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, padRight(tc.input, tc.width, ' '))
		})
	}
}

func testNormalizedHeader() models.NormalizedHeader {
	return models.NormalizedHeader{
		CompanyName: "TDV SERVICIOS SPA",
		CompanyRUT:  "781681261",
		Agreement:   "123",
		ProcessDate: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildHeaderLine(t *testing.T) {
	line, err := buildHeaderLine(testNormalizedHeader(), 9, decimal.NewFromInt(330000))
	require.NoError(t, err)
	require.Len(t, []rune(line), 263)

	assert.Equal(t, "00", line[0:2])
	assert.Equal(t, "0781681261", line[2:12])
	assert.Equal(t, "123", line[12:15])
	assert.Equal(t, "20260227", line[15:23])
	assert.Equal(t, "00009", line[23:28])
	assert.Equal(t, "000000330000", line[28:40])
	assert.Equal(t, "00001", line[40:45])
	assert.Equal(t, strings.Repeat(" ", 218), line[45:])
}

func TestBuildAccountLineLayout(t *testing.T) {
	row := normRow(t, "123456789", "FACTURA", "1001", "150000")
	row.BranchCode = "007"
	row.Email = "pagos@nire.cl"

	line, err := buildAccountLine(row, row.Amount, "pago refund")
	require.NoError(t, err)
	require.Len(t, []rune(line), 263)

	assert.Equal(t, "10", line[0:2])
	assert.Equal(t, "0123456785", line[2:12])
	assert.Equal(t, padRight("Proveedor Uno Ltda.", 40, ' '), line[12:52])
	assert.Equal(t, strings.Repeat(" ", 94), line[52:146])
	assert.Equal(t, padRight("pagos@nire.cl", 40, ' '), line[146:186])
	assert.Equal(t, "01", line[186:188])
	assert.Equal(t, "0000000123456789", line[188:204])
	assert.Equal(t, "014", line[204:207])
	assert.Equal(t, "007", line[207:210])
	assert.Equal(t, "000000150000", line[210:222])
	assert.Equal(t, padRight("pago refund", 40, ' '), line[222:262])
	assert.Equal(t, "S", line[262:263])
}

func TestBuildAccountLineTruncation(t *testing.T) {
	row := normRow(t, "99999999999999999999", "FACTURA", "1001", "150000")
	long := "NOMBRE EXTREMADAMENTE LARGO DE PROVEEDOR QUE EXCEDE EL CAMPO"
	row.ProviderName = long

	line, err := buildAccountLine(row, row.Amount, "")
	require.NoError(t, err)
	require.Len(t, []rune(line), 263)

	// Text truncates from the right, numbers from the left.
	assert.Equal(t, long[:40], line[12:52])
	assert.Equal(t, "9999999999999999", line[188:204])
}

func TestBuildDocumentLineLayout(t *testing.T) {
	row := normRow(t, "123456789", "NOTA DE CREDITO", "6002", "10000")
	row.Message = "ajuste"

	line, err := buildDocumentLine(row)
	require.NoError(t, err)
	require.Len(t, []rune(line), 263)

	assert.Equal(t, "20", line[0:2])
	assert.Equal(t, "02", line[2:4])
	assert.Equal(t, "000000006002", line[4:16])
	assert.Equal(t, "0123456785", line[16:26])
	assert.Equal(t, padRight("Proveedor Uno Ltda.", 40, ' '), line[26:66])
	assert.Equal(t, padRight("ajuste", 40, ' '), line[66:106])
	assert.Equal(t, "000000010000", line[106:118])
	assert.Equal(t, strings.Repeat(" ", 145), line[118:])
}

func TestBuildHeaderLineBadRUT(t *testing.T) {
	header := testNormalizedHeader()
	header.CompanyRUT = ""
	_, err := buildHeaderLine(header, 1, decimal.Zero)
	assert.Error(t, err)
}
