package nomina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/models"
)

func testResolver() *catalog.Resolver {
	return catalog.NewResolver(catalog.Default())
}

func validHeader() models.HeaderInput {
	return models.HeaderInput{
		CompanyName: "TDV SERVICIOS SPA",
		CompanyRUT:  "78168126-1",
		Agreement:   "123",
		ProcessDate: "2026-02-27",
	}
}

func validRow() models.RowInput {
	return models.RowInput{
		ProviderRUT:       "12.345.678-5",
		ProviderName:      "Proveedor Uno Ltda.",
		BankName:          "BANCO DE CHILE",
		Account:           "123456789",
		DocumentTypeName:  "FACTURA",
		DocumentNumber:    "1001",
		Amount:            "150000",
		PaymentMethodName: "CUENTA CORRIENTE",
	}
}

func TestValidateOK(t *testing.T) {
	result := Validate(validHeader(), []models.RowInput{validRow()}, testResolver())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateHeaderRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.HeaderInput)
		field  string
	}{
		{"Missing company name", func(h *models.HeaderInput) { h.CompanyName = "  " }, "empresa"},
		{"Missing company RUT", func(h *models.HeaderInput) { h.CompanyRUT = "" }, "rut_empresa"},
		{"Bad RUT checksum", func(h *models.HeaderInput) { h.CompanyRUT = "78168126-2" }, "rut_empresa"},
		{"Missing agreement", func(h *models.HeaderInput) { h.Agreement = "" }, "convenio"},
		{"Bad date format", func(h *models.HeaderInput) { h.ProcessDate = "27-02-2026" }, "fecha_proceso"},
		{"Impossible date", func(h *models.HeaderInput) { h.ProcessDate = "2026-02-30" }, "fecha_proceso"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := validHeader()
			tc.mutate(&header)
			result := Validate(header, []models.RowInput{validRow()}, testResolver())
			require.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, models.ScopeHeader, result.Errors[0].Scope)
			assert.Equal(t, tc.field, result.Errors[0].Field)
			assert.Equal(t, -1, result.Errors[0].RowIndex)
		})
	}
}

func TestValidateEmptyDateIsOK(t *testing.T) {
	header := validHeader()
	header.ProcessDate = ""
	result := Validate(header, []models.RowInput{validRow()}, testResolver())
	assert.True(t, result.Valid)
}

func TestValidateZeroRows(t *testing.T) {
	result := Validate(validHeader(), nil, testResolver())
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.ScopeSystem, result.Errors[0].Scope)
	assert.Equal(t, "filas", result.Errors[0].Field)
}

func TestValidateRowRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RowInput)
		field  string
	}{
		{"Missing provider RUT", func(r *models.RowInput) { r.ProviderRUT = "" }, "rut_proveedor"},
		{"Bad provider RUT", func(r *models.RowInput) { r.ProviderRUT = "12.345.678-9" }, "rut_proveedor"},
		{"Missing provider name", func(r *models.RowInput) { r.ProviderName = " " }, "nombre_proveedor"},
		{"Missing bank", func(r *models.RowInput) { r.BankName = "" }, "banco"},
		{"Unknown bank", func(r *models.RowInput) { r.BankName = "BANCO INVENTADO" }, "banco"},
		{"Missing account", func(r *models.RowInput) { r.Account = "" }, "cuenta"},
		{"Missing document type", func(r *models.RowInput) { r.DocumentTypeName = "" }, "tipo_documento"},
		{"Unknown document type", func(r *models.RowInput) { r.DocumentTypeName = "GUIA" }, "tipo_documento"},
		{"Missing document number", func(r *models.RowInput) { r.DocumentNumber = "" }, "numero_documento"},
		{"Missing amount", func(r *models.RowInput) { r.Amount = "" }, "monto"},
		{"Non-numeric amount", func(r *models.RowInput) { r.Amount = "mil pesos" }, "monto"},
		{"Negative amount", func(r *models.RowInput) { r.Amount = "-1" }, "monto"},
		{"Missing payment method", func(r *models.RowInput) { r.PaymentMethodName = "" }, "forma_pago"},
		{"Unknown payment method", func(r *models.RowInput) { r.PaymentMethodName = "CHEQUE" }, "forma_pago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow()
			tc.mutate(&row)
			result := Validate(validHeader(), []models.RowInput{row}, testResolver())
			require.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, models.ScopeRow, result.Errors[0].Scope)
			assert.Equal(t, tc.field, result.Errors[0].Field)
			assert.Equal(t, 0, result.Errors[0].RowIndex)
		})
	}
}

func TestValidateZeroAmountIsOK(t *testing.T) {
	row := validRow()
	row.Amount = "0"
	result := Validate(validHeader(), []models.RowInput{row}, testResolver())
	assert.True(t, result.Valid)
}

// Three rows, each missing a different required field, must report
// exactly three findings pointing at the right row each.
func TestValidateCompleteness(t *testing.T) {
	rowMissingName := validRow()
	rowMissingName.ProviderName = ""
	rowMissingAccount := validRow()
	rowMissingAccount.Account = ""
	rowMissingAmount := validRow()
	rowMissingAmount.Amount = ""

	result := Validate(validHeader(), []models.RowInput{rowMissingName, rowMissingAccount, rowMissingAmount}, testResolver())
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, "nombre_proveedor", result.Errors[0].Field)
	assert.Equal(t, 0, result.Errors[0].RowIndex)
	assert.Equal(t, "cuenta", result.Errors[1].Field)
	assert.Equal(t, 1, result.Errors[1].RowIndex)
	assert.Equal(t, "monto", result.Errors[2].Field)
	assert.Equal(t, 2, result.Errors[2].RowIndex)
	for _, e := range result.Errors {
		assert.Equal(t, models.ScopeRow, e.Scope)
	}
}
