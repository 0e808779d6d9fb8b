package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	assert.Len(t, c.Banks, 13)
	assert.Len(t, c.PaymentMethods, 7)
	assert.Len(t, c.DocumentTypes, 4)

	r := NewResolver(c)

	// The settlement constants must resolve against the default catalog,
	// otherwise the business rules would produce unresolvable rows.
	house, ok := r.Bank(HouseBank)
	require.True(t, ok)
	assert.Equal(t, "014", house.Code)
	for _, name := range []string{MethodValeVistaFisico, MethodValeVistaVirtual, MethodOtherBankAccount} {
		_, ok := r.PaymentMethod(name)
		assert.True(t, ok, "payment method %s must resolve", name)
	}
	_, ok = r.DocumentType(DocTypeCreditNote)
	assert.True(t, ok)

	for _, b := range c.Banks {
		assert.Len(t, b.Code, 3, "bank %s code must be 3 digits", b.Name)
	}
	for _, m := range c.PaymentMethods {
		assert.Len(t, m.Code, 2, "payment method %s code must be 2 characters", m.Name)
	}
	for _, d := range c.DocumentTypes {
		assert.Len(t, d.Code, 2, "document type %s code must be 2 characters", d.Name)
	}
}

func TestResolverBank(t *testing.T) {
	r := NewResolver(Default())

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Exact name", "BANCO DE CHILE", "001", true},
		{"Lowercase accented name", "banco itaú", "039", true},
		{"Extra whitespace", "  banco   santander ", "037", true},
		{"Full code", "014", "014", true},
		{"Short code zero-padded", "1", "001", true},
		{"Two-digit code", "39", "039", true},
		{"Unknown name", "BANCO INVENTADO", "", false},
		{"Unknown code", "999", "", false},
		{"Empty", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := r.Bank(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, b.Code)
			}
		})
	}
}

func TestResolverPaymentMethod(t *testing.T) {
	r := NewResolver(Default())

	m, ok := r.PaymentMethod("vale vista físico")
	require.True(t, ok)
	assert.Equal(t, "04", m.Code)

	m, ok = r.PaymentMethod("06")
	require.True(t, ok)
	assert.Equal(t, MethodOtherBankAccount, m.Name)

	// Code lookup compares 2-character tokens, so longer inputs
	// truncate before matching.
	m, ok = r.PaymentMethod("061")
	require.True(t, ok)
	assert.Equal(t, MethodOtherBankAccount, m.Name)

	_, ok = r.PaymentMethod("TRANSFERENCIA SWIFT")
	assert.False(t, ok)
}

func TestResolverDocumentType(t *testing.T) {
	r := NewResolver(Default())

	d, ok := r.DocumentType("nota de crédito")
	require.True(t, ok)
	assert.Equal(t, "02", d.Code)

	d, ok = r.DocumentType("01")
	require.True(t, ok)
	assert.Equal(t, "FACTURA", d.Name)

	_, ok = r.DocumentType("GUIA DE DESPACHO")
	assert.False(t, ok)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	original := Default()
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadRejectsIncompleteCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banks:\n  - name: BANCO DE CHILE\n    code: \"001\"\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
