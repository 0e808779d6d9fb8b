package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersSharedFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "output", "company", "rut", "agreement", "date"} {
		flag := Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "flag %s must be registered", name)
	}
}

func TestHeaderBuildsFromFlags(t *testing.T) {
	SharedFlags.Company = "TDV SERVICIOS SPA"
	SharedFlags.CompanyRUT = "78168126-1"
	SharedFlags.Agreement = "123"
	SharedFlags.Date = "2026-02-27"
	defer func() { SharedFlags = CommonFlags{} }()

	header := Header()
	assert.Equal(t, "TDV SERVICIOS SPA", header.CompanyName)
	assert.Equal(t, "78168126-1", header.CompanyRUT)
	assert.Equal(t, "123", header.Agreement)
	assert.Equal(t, "2026-02-27", header.ProcessDate)
}
