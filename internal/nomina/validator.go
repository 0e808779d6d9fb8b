package nomina

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/rut"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate applies every header and row rule and returns the complete
// finding list. It never fails fast: every row is checked even when an
// earlier one already has errors, so operators see all problems at
// once. An empty row set is a single System finding that replaces any
// row findings.
func Validate(header models.HeaderInput, rows []models.RowInput, resolver *catalog.Resolver) models.ValidationResult {
	var errs []models.ValidationError
	addHeader := func(field, msg string) {
		errs = append(errs, models.ValidationError{Scope: models.ScopeHeader, Field: field, Message: msg, RowIndex: -1})
	}

	if strings.TrimSpace(header.CompanyName) == "" {
		addHeader("empresa", "el nombre de la empresa es obligatorio")
	}
	if strings.TrimSpace(header.CompanyRUT) == "" {
		addHeader("rut_empresa", "el RUT de la empresa es obligatorio")
	} else if !rut.IsValid(header.CompanyRUT) {
		addHeader("rut_empresa", "el RUT de la empresa no es valido")
	}
	if strings.TrimSpace(header.Agreement) == "" {
		addHeader("convenio", "el numero de convenio es obligatorio")
	}
	if d := strings.TrimSpace(header.ProcessDate); d != "" {
		if !isoDateRe.MatchString(d) {
			addHeader("fecha_proceso", "la fecha de proceso debe tener formato YYYY-MM-DD")
		} else if _, err := time.Parse("2006-01-02", d); err != nil {
			addHeader("fecha_proceso", "la fecha de proceso no es una fecha valida")
		}
	}

	if len(rows) == 0 {
		errs = append(errs, models.ValidationError{
			Scope:    models.ScopeSystem,
			Field:    "filas",
			Message:  "se requiere al menos una fila de pago",
			RowIndex: -1,
		})
		return newResult(errs)
	}

	for i, row := range rows {
		errs = append(errs, validateRow(i, row, resolver)...)
	}
	return newResult(errs)
}

func newResult(errs []models.ValidationError) models.ValidationResult {
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateRow(index int, row models.RowInput, resolver *catalog.Resolver) []models.ValidationError {
	var errs []models.ValidationError
	add := func(field, msg string) {
		errs = append(errs, models.ValidationError{Scope: models.ScopeRow, Field: field, Message: msg, RowIndex: index})
	}

	if strings.TrimSpace(row.ProviderRUT) == "" {
		add("rut_proveedor", "el RUT del proveedor es obligatorio")
	} else if !rut.IsValid(row.ProviderRUT) {
		add("rut_proveedor", "el RUT del proveedor no es valido")
	}
	if strings.TrimSpace(row.ProviderName) == "" {
		add("nombre_proveedor", "el nombre del proveedor es obligatorio")
	}
	if strings.TrimSpace(row.BankName) == "" {
		add("banco", "el banco es obligatorio")
	} else if _, ok := resolver.Bank(row.BankName); !ok {
		add("banco", "banco no reconocido")
	}
	if strings.TrimSpace(row.Account) == "" {
		add("cuenta", "el numero de cuenta es obligatorio")
	}
	if strings.TrimSpace(row.DocumentTypeName) == "" {
		add("tipo_documento", "el tipo de documento es obligatorio")
	} else if _, ok := resolver.DocumentType(row.DocumentTypeName); !ok {
		add("tipo_documento", "tipo de documento no reconocido")
	}
	if strings.TrimSpace(row.DocumentNumber) == "" {
		add("numero_documento", "el numero de documento es obligatorio")
	}
	if amt := strings.TrimSpace(row.Amount); amt == "" {
		add("monto", "el monto es obligatorio")
	} else if parsed, err := decimal.NewFromString(amt); err != nil {
		add("monto", "el monto debe ser numerico")
	} else if parsed.IsNegative() {
		add("monto", "el monto no puede ser negativo")
	}
	if strings.TrimSpace(row.PaymentMethodName) == "" {
		add("forma_pago", "la forma de pago es obligatoria")
	} else if _, ok := resolver.PaymentMethod(row.PaymentMethodName); !ok {
		add("forma_pago", "forma de pago no reconocida")
	}
	return errs
}
