package get_contacts

import (
	"github.com/m04kA/EconLab-ReservationService/pkg/contact"
)

// SMSLink ссылка для открытия SMS на устройстве администратора
type SMSLink struct {
	Phone string `json:"phone"`
	URI   string `json:"uri"`
}

// ContactsResponse HTTP response model
type ContactsResponse struct {
	Phones     []string  `json:"phones"`
	Clipboard  string    `json:"clipboard"`
	SMS        []SMSLink `json:"sms"`
	MissingIDs []string  `json:"missingIds"`
}

// ToContactsResponse форматирует телефоны и строит SMS-ссылки с текстом message
func ToContactsResponse(rawPhones []string, message string, missing []string) *ContactsResponse {
	phones := contact.PhoneList(rawPhones)

	links := make([]SMSLink, 0, len(phones))
	for _, p := range phones {
		links = append(links, SMSLink{Phone: p, URI: contact.SMSURI(p, message)})
	}

	if missing == nil {
		missing = []string{}
	}

	return &ContactsResponse{
		Phones:     phones,
		Clipboard:  contact.JoinPhoneList(phones, ", "),
		SMS:        links,
		MissingIDs: missing,
	}
}
