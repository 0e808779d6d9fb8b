package nomina

import "fmt"

// ResolutionError reports a catalog lookup that failed after validation
// had already confirmed resolvability. It marks a broken invariant, not
// a user mistake.
type ResolutionError struct {
	Field string
	Value string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no se pudo resolver %s '%s' en el catalogo", e.Field, e.Value)
}

// NegativeNetError reports a grouped account whose credit notes exceed
// its charges. Such a group cannot be paid and aborts the run.
type NegativeNetError struct {
	Account string
	Net     string
}

func (e *NegativeNetError) Error() string {
	return fmt.Sprintf("la cuenta %s tiene un total neto negativo (%s): las notas de credito superan los cargos", e.Account, e.Net)
}

// LineLengthError reports a rendered record that is not exactly
// lineLength characters. Every occurrence is a programming error in the
// layout tables.
type LineLengthError struct {
	RecordType string
	Length     int
}

func (e *LineLengthError) Error() string {
	return fmt.Sprintf("registro %s con largo %d, se esperaban %d caracteres", e.RecordType, e.Length, lineLength)
}
