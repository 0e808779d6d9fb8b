// Package rut implements Chilean RUT handling: modulo-11 check digit
// computation, validation and the fixed-width form the bank file uses.
package rut

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormatError reports an input too short to split into a body and a
// check digit.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("rut '%s' is too short: need at least a body digit and a check digit", e.Input)
}

var (
	cleanRe   = regexp.MustCompile(`[^0-9kK]`)
	numericRe = regexp.MustCompile(`^[0-9]+$`)
)

// Clean strips every character that is not a digit or the letter K.
func Clean(s string) string {
	return cleanRe.ReplaceAllString(s, "")
}

// CheckDigit computes the modulo-11 check digit for an all-numeric RUT
// body: digits are walked right to left against the cyclic multiplier
// sequence 2..7.
func CheckDigit(body string) string {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		mult++
		if mult > 7 {
			mult = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(r)
	}
}

// IsValid reports whether s carries a non-empty numeric body whose
// check digit matches, ignoring case and punctuation.
func IsValid(s string) bool {
	clean := Clean(s)
	if len(clean) < 2 {
		return false
	}
	body, dv := clean[:len(clean)-1], strings.ToUpper(clean[len(clean)-1:])
	if !numericRe.MatchString(body) {
		return false
	}
	return CheckDigit(body) == dv
}

// FormatFixedWidth10 renders a RUT as exactly 10 characters: the
// rightmost 9 body digits zero-padded plus the uppercased check digit.
func FormatFixedWidth10(s string) (string, error) {
	clean := Clean(s)
	if len(clean) < 2 {
		return "", &FormatError{Input: s}
	}
	body, dv := clean[:len(clean)-1], strings.ToUpper(clean[len(clean)-1:])
	if len(body) > 9 {
		body = body[len(body)-9:]
	}
	return fmt.Sprintf("%09s%s", body, dv), nil
}

// Format returns the display form used in logs and operator messages,
// e.g. "12.345.678-5". Inputs without a body come back cleaned only.
func Format(s string) string {
	clean := Clean(s)
	if len(clean) < 2 {
		return clean
	}
	body, dv := clean[:len(clean)-1], strings.ToUpper(clean[len(clean)-1:])
	var groups []string
	for len(body) > 3 {
		groups = append([]string{body[len(body)-3:]}, groups...)
		body = body[:len(body)-3]
	}
	groups = append([]string{body}, groups...)
	return strings.Join(groups, ".") + "-" + dv
}
