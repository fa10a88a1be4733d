// Package phone canonicalizes Korean mobile numbers.
package phone

import (
	"errors"
	"strings"
)

// ErrInvalidPhone is returned when the input is not a recognizable mobile number.
var ErrInvalidPhone = errors.New("phone: invalid phone number")

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the local "01..." digit form of raw.
// "+82 10-1234-5678", "821012345678" and "010-1234-5678" all become "01012345678".
func Normalize(raw string) (string, error) {
	digits := Digits(raw)

	if strings.HasPrefix(digits, "8210") && len(digits) == 12 {
		return "0" + digits[2:], nil
	}

	if strings.HasPrefix(digits, "82") {
		rest := digits[2:]
		if strings.HasPrefix(rest, "1") && (len(rest) == 9 || len(rest) == 10) {
			return "0" + rest, nil
		}
	}

	if strings.HasPrefix(digits, "01") && (len(digits) == 10 || len(digits) == 11) {
		return digits, nil
	}

	return "", ErrInvalidPhone
}
