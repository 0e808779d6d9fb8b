package catalog

import (
	"strings"

	"tdv/nomina-txt/internal/textutils"
)

// Resolver answers name-or-code lookups against one catalog snapshot.
// Name lookup wins; code lookup is the fallback. Bank codes are
// zero-padded to 3 digits before matching, method and document codes
// compare as 2-character tokens.
type Resolver struct {
	banksByName    map[string]Bank
	banksByCode    map[string]Bank
	methodsByName  map[string]PaymentMethod
	methodsByCode  map[string]PaymentMethod
	docTypesByName map[string]DocumentType
	docTypesByCode map[string]DocumentType
}

// NewResolver indexes the catalog by normalized name and normalized
// code for each of the three domains.
func NewResolver(c Catalog) *Resolver {
	r := &Resolver{
		banksByName:    make(map[string]Bank, len(c.Banks)),
		banksByCode:    make(map[string]Bank, len(c.Banks)),
		methodsByName:  make(map[string]PaymentMethod, len(c.PaymentMethods)),
		methodsByCode:  make(map[string]PaymentMethod, len(c.PaymentMethods)),
		docTypesByName: make(map[string]DocumentType, len(c.DocumentTypes)),
		docTypesByCode: make(map[string]DocumentType, len(c.DocumentTypes)),
	}
	for _, b := range c.Banks {
		r.banksByName[textutils.NormalizeCode(b.Name)] = b
		r.banksByCode[padCode(textutils.NormalizeCode(b.Code), 3)] = b
	}
	for _, m := range c.PaymentMethods {
		r.methodsByName[textutils.NormalizeCode(m.Name)] = m
		r.methodsByCode[token2(textutils.NormalizeCode(m.Code))] = m
	}
	for _, d := range c.DocumentTypes {
		r.docTypesByName[textutils.NormalizeCode(d.Name)] = d
		r.docTypesByCode[token2(textutils.NormalizeCode(d.Code))] = d
	}
	return r
}

// Bank resolves a bank by name, then by zero-padded SBIF code.
func (r *Resolver) Bank(input string) (Bank, bool) {
	key := textutils.NormalizeCode(input)
	if b, ok := r.banksByName[key]; ok {
		return b, true
	}
	b, ok := r.banksByCode[padCode(key, 3)]
	return b, ok
}

// PaymentMethod resolves a payment method by name, then by code token.
func (r *Resolver) PaymentMethod(input string) (PaymentMethod, bool) {
	key := textutils.NormalizeCode(input)
	if m, ok := r.methodsByName[key]; ok {
		return m, true
	}
	m, ok := r.methodsByCode[token2(key)]
	return m, ok
}

// DocumentType resolves a document type by name, then by code token.
func (r *Resolver) DocumentType(input string) (DocumentType, bool) {
	key := textutils.NormalizeCode(input)
	if d, ok := r.docTypesByName[key]; ok {
		return d, true
	}
	d, ok := r.docTypesByCode[token2(key)]
	return d, ok
}

func padCode(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func token2(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}
