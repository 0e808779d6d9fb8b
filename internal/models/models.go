// Package models defines the value types exchanged between the
// validator, the normalizer, the grouping engine and the file
// generator. Everything here is a plain value produced and consumed
// inside a single call; nothing is mutated after construction and
// nothing outlives one run.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tdv/nomina-txt/internal/catalog"
)

// Scope identifies which part of the input a validation finding
// refers to.
type Scope string

const (
	ScopeHeader Scope = "Header"
	ScopeRow    Scope = "Row"
	ScopeSystem Scope = "System"
)

// HeaderInput is the per-file data supplied once per generation call.
type HeaderInput struct {
	CompanyName string
	CompanyRUT  string
	Agreement   string
	// ProcessDate is an optional ISO date (YYYY-MM-DD); empty means the
	// current date.
	ProcessDate string
}

// RowInput is one payment as supplied by the caller. The csv tags also
// name the columns the XLSX row source accepts.
type RowInput struct {
	ProviderRUT       string `csv:"rut_proveedor"`
	ProviderName      string `csv:"nombre_proveedor"`
	BankName          string `csv:"banco"`
	Account           string `csv:"cuenta"`
	DocumentTypeName  string `csv:"tipo_documento"`
	DocumentNumber    string `csv:"numero_documento"`
	Amount            string `csv:"monto"`
	PaymentMethodName string `csv:"forma_pago"`
	BranchCode        string `csv:"sucursal"`
	Email             string `csv:"email"`
	Message           string `csv:"mensaje"`
}

// ValidationError is one reportable finding. RowIndex is the 0-based
// position in the original row sequence and is -1 unless Scope is
// ScopeRow.
type ValidationError struct {
	Scope    Scope
	Field    string
	Message  string
	RowIndex int
}

func (e ValidationError) String() string {
	if e.Scope == ScopeRow {
		return fmt.Sprintf("fila %d, %s: %s", e.RowIndex+1, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult is the complete outcome of one validation run.
// Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// NormalizedHeader is the header after cleaning and date resolution.
type NormalizedHeader struct {
	CompanyName string
	CompanyRUT  string
	Agreement   string
	ProcessDate time.Time
}

// NormalizedRow is the canonical, catalog-resolved shape of a payment
// row: accent-free uppercased coded fields, resolved catalog entries
// with their codes, and an integral amount.
type NormalizedRow struct {
	ProviderRUT    string
	ProviderName   string
	Bank           catalog.Bank
	Account        string
	DocumentType   catalog.DocumentType
	DocumentNumber string
	Amount         decimal.Decimal
	PaymentMethod  catalog.PaymentMethod
	BranchCode     string
	Email          string
	Message        string
}

// GroupedRow consolidates the normalized rows sharing one account.
// Leader is the first row in sorted order and supplies the account
// record's bank and payment data; NetAmount nets credit notes against
// charges.
type GroupedRow struct {
	Account   string
	Leader    NormalizedRow
	Rows      []NormalizedRow
	NetAmount decimal.Decimal
	Message   string
}

// Mode selects between one record pair per row and one consolidated
// record per account. The values render into the output file name.
type Mode string

const (
	ModeFlat    Mode = "normal"
	ModeGrouped Mode = "agrupada"
)

// GeneratedFile is the terminal artifact of a generation run.
type GeneratedFile struct {
	FileName    string
	Content     string
	LineCount   int
	TotalAmount decimal.Decimal
	Mode        Mode
}
