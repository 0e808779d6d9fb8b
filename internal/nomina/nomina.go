// Package nomina implements the payment-nomina engine: validation of
// header and rows, catalog-driven normalization with the settlement
// rules, optional per-account grouping with credit-note netting, and
// the fixed-width rendering of the bank file.
//
// The whole pipeline is a pure, synchronous transformation. Validation
// findings travel as models.ValidationError values; Go errors are
// reserved for fatal conditions (broken invariants, negative group
// nets) with no safe continuation.
package nomina

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
