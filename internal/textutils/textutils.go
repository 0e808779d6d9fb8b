// Package textutils provides the text normalization primitives shared by
// catalog matching, validation and fixed-width rendering.
package textutils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	whitespaceRe = regexp.MustCompile(`[\s\p{Cc}]+`)
	digitsRe     = regexp.MustCompile(`[0-9]+`)
)

// stripMarks builds a transformer that decomposes the input and removes
// combining marks, turning "Ñuñoa" into "Nunoa". Transformers carry
// state, so each call gets a fresh chain.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// CollapseWhitespace replaces every run of whitespace or control
// characters with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeCode produces the canonical matching form of a catalog key or
// coded field: accent-free, whitespace-collapsed, uppercase.
// NormalizeCode is idempotent.
func NormalizeCode(s string) string {
	out, _, err := transform.String(stripMarks(), s)
	if err != nil {
		log.WithError(err).WithField("input", s).Debug("diacritic stripping failed, using raw input")
		out = s
	}
	return strings.ToUpper(CollapseWhitespace(out))
}

// NormalizeFreeText collapses whitespace but preserves casing. Used for
// human-readable fields such as names and messages.
func NormalizeFreeText(s string) string {
	return CollapseWhitespace(s)
}

// NormalizeEmail is NormalizeFreeText plus lowercasing.
func NormalizeEmail(s string) string {
	return strings.ToLower(CollapseWhitespace(s))
}

// DigitsOnly returns the concatenation of every decimal digit run in s,
// or the empty string when s contains no digits.
func DigitsOnly(s string) string {
	return strings.Join(digitsRe.FindAllString(s, -1), "")
}
