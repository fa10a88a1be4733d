// Package masking redacts personal data for public views.
package masking

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/EconLab-ReservationService/pkg/phone"
)

// Name keeps the first character: "홍길동" -> "홍**". One-character names are returned as is.
func Name(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= 1 {
		return name
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r) + "**"
}

// StudentID keeps the admission-year prefix.
func StudentID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	if len(id) == 8 && strings.HasPrefix(id, "20") {
		return id[:2] + "******"
	}
	if len(id) == 9 {
		switch id[:3] {
		case "120", "220", "320":
			return id[:3] + "******"
		}
	}
	if len(id) <= 3 {
		return id
	}

	stars := len(id) - 3
	if stars < 1 {
		stars = 1
	}
	return id[:3] + strings.Repeat("**", stars)
}

// Phone hides the middle block: "01012345678" -> "010-****-5678".
func Phone(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	if parts := strings.Split(p, "-"); len(parts) == 3 {
		return parts[0] + "-****-" + parts[2]
	}

	digits := phone.Digits(p)
	if len(digits) > 7 {
		return digits[:3] + "-****-" + digits[len(digits)-4:]
	}
	return p
}

// FormatPhone inserts hyphens: 3-4-4 for 11 digits, 3-3-4 for 10.
func FormatPhone(p string) string {
	digits := phone.Digits(p)
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	default:
		return p
	}
}
