// Package catalog holds the bank, payment-method and document-type
// reference data the engine resolves free-text input against, plus the
// settlement constants the business rules depend on.
package catalog

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Settlement constants. Vale vista instruments can only clear through
// the house bank, and any account outside it must use the external
// transfer method.
const (
	HouseBank              = "SCOTIABANK"
	MethodValeVistaFisico  = "VALE VISTA FISICO"
	MethodValeVistaVirtual = "VALE VISTA VIRTUAL"
	MethodOtherBankAccount = "CUENTA OTRO BANCO"
	DocTypeCreditNote      = "NOTA DE CREDITO"
)

// Bank is a catalog entry keyed by name and 3-digit SBIF code.
type Bank struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// PaymentMethod is a catalog entry keyed by name and 2-character code.
type PaymentMethod struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// DocumentType is a catalog entry keyed by name and 2-character code.
type DocumentType struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Catalog bundles the three reference lists for one generation run.
// Catalogs are read-only once built and safe to share between calls.
type Catalog struct {
	Banks          []Bank          `yaml:"banks"`
	PaymentMethods []PaymentMethod `yaml:"payment_methods"`
	DocumentTypes  []DocumentType  `yaml:"document_types"`
}

// Default returns the built-in Chilean catalog: SBIF bank registry
// codes, the seven payment methods the bank accepts and the four
// document types the backoffice issues.
func Default() Catalog {
	return Catalog{
		Banks: []Bank{
			{Name: "BANCO DE CHILE", Code: "001"},
			{Name: "BANCO INTERNACIONAL", Code: "009"},
			{Name: "BANCO ESTADO", Code: "012"},
			{Name: HouseBank, Code: "014"},
			{Name: "BANCO DE CREDITO E INVERSIONES", Code: "016"},
			{Name: "BANCO BICE", Code: "028"},
			{Name: "HSBC BANK CHILE", Code: "031"},
			{Name: "BANCO SANTANDER", Code: "037"},
			{Name: "BANCO ITAU", Code: "039"},
			{Name: "BANCO SECURITY", Code: "049"},
			{Name: "BANCO FALABELLA", Code: "051"},
			{Name: "BANCO RIPLEY", Code: "053"},
			{Name: "BANCO CONSORCIO", Code: "055"},
		},
		PaymentMethods: []PaymentMethod{
			{Name: "CUENTA CORRIENTE", Code: "01"},
			{Name: "CUENTA VISTA", Code: "02"},
			{Name: "CUENTA DE AHORRO", Code: "03"},
			{Name: MethodValeVistaFisico, Code: "04"},
			{Name: MethodValeVistaVirtual, Code: "05"},
			{Name: MethodOtherBankAccount, Code: "06"},
			{Name: "CUENTA RUT", Code: "07"},
		},
		DocumentTypes: []DocumentType{
			{Name: "FACTURA", Code: "01"},
			{Name: DocTypeCreditNote, Code: "02"},
			{Name: "NOTA DE DEBITO", Code: "03"},
			{Name: "BOLETA", Code: "04"},
		},
	}
}
