package nomina

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/rut"
	"tdv/nomina-txt/internal/textutils"
)

// NormalizeHeader cleans the header fields and resolves the process
// date, defaulting to the current date when none was supplied.
func NormalizeHeader(header models.HeaderInput) (models.NormalizedHeader, error) {
	date := time.Now()
	if d := strings.TrimSpace(header.ProcessDate); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return models.NormalizedHeader{}, fmt.Errorf("fecha de proceso invalida '%s': %w", header.ProcessDate, err)
		}
		date = parsed
	}
	return models.NormalizedHeader{
		CompanyName: textutils.NormalizeCode(header.CompanyName),
		CompanyRUT:  rut.Clean(header.CompanyRUT),
		Agreement:   textutils.NormalizeCode(header.Agreement),
		ProcessDate: date,
	}, nil
}

// NormalizeRow turns a validated row into its canonical shape. The
// stage order is fixed: text normalization, then the vale-vista rule,
// then the foreign-bank rule, then catalog resolution, amount rounding
// and the branch default. NormalizeRow is only called on rows that
// already passed validation; a failure here is an invariant violation,
// not a finding to report.
func NormalizeRow(row models.RowInput, resolver *catalog.Resolver) (models.NormalizedRow, error) {
	bankName := textutils.NormalizeCode(row.BankName)
	methodName := textutils.NormalizeCode(row.PaymentMethodName)
	account := textutils.NormalizeCode(row.Account)
	docTypeName := textutils.NormalizeCode(row.DocumentTypeName)

	// Vale vista instruments clear through the house bank only; the
	// supplied bank and account are discarded.
	if methodName == catalog.MethodValeVistaFisico || methodName == catalog.MethodValeVistaVirtual {
		bankName = catalog.HouseBank
		account = "0"
	}

	// Any account outside the house bank settles as an external
	// transfer, whatever method the caller declared.
	if bankName != catalog.HouseBank && methodName != catalog.MethodOtherBankAccount {
		log.WithFields(logrus.Fields{
			"account": account,
			"bank":    bankName,
			"method":  methodName,
		}).Debug("forcing external-account payment method for non-house bank")
		methodName = catalog.MethodOtherBankAccount
	}

	bank, ok := resolver.Bank(bankName)
	if !ok {
		return models.NormalizedRow{}, &ResolutionError{Field: "banco", Value: bankName}
	}
	method, ok := resolver.PaymentMethod(methodName)
	if !ok {
		return models.NormalizedRow{}, &ResolutionError{Field: "forma de pago", Value: methodName}
	}
	docType, ok := resolver.DocumentType(docTypeName)
	if !ok {
		return models.NormalizedRow{}, &ResolutionError{Field: "tipo de documento", Value: docTypeName}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return models.NormalizedRow{}, fmt.Errorf("monto invalido '%s': %w", row.Amount, err)
	}
	amount = amount.Round(0)
	if amount.IsNegative() {
		return models.NormalizedRow{}, fmt.Errorf("monto negativo %s para el documento %s", amount, row.DocumentNumber)
	}

	branch := textutils.NormalizeCode(row.BranchCode)
	if branch == "" {
		branch = "000"
	} else {
		branch = padLeft(branch, 3, '0')
	}

	return models.NormalizedRow{
		ProviderRUT:    rut.Clean(row.ProviderRUT),
		ProviderName:   textutils.NormalizeFreeText(row.ProviderName),
		Bank:           bank,
		Account:        account,
		DocumentType:   docType,
		DocumentNumber: textutils.NormalizeFreeText(row.DocumentNumber),
		Amount:         amount,
		PaymentMethod:  method,
		BranchCode:     branch,
		Email:          textutils.NormalizeEmail(row.Email),
		Message:        textutils.NormalizeFreeText(row.Message),
	}, nil
}
