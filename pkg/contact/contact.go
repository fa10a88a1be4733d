// Package contact builds clipboard and SMS payloads for admin outreach.
package contact

import (
	"net/url"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// SMSURI returns an sms: link with a percent-encoded body.
func SMSURI(phone, message string) string {
	uri := "sms:" + phone
	if message == "" {
		return uri
	}
	return uri + "?body=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// PhoneList formats and de-duplicates phones, preserving first-seen order.
func PhoneList(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	result := make([]string, 0, len(phones))
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		formatted := masking.FormatPhone(p)
		if _, ok := seen[formatted]; ok {
			continue
		}
		seen[formatted] = struct{}{}
		result = append(result, formatted)
	}
	return result
}

// JoinPhoneList returns the clipboard payload for phones.
func JoinPhoneList(phones []string, sep string) string {
	if sep == "" {
		sep = ", "
	}
	return strings.Join(PhoneList(phones), sep)
}
