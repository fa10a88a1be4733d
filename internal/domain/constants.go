package domain

import "regexp"

// Lab layout
const (
	TotalSeats             = 60
	FirstNonReservableSeat = 57
)

// AllowedDepartment единственный факультет, студентам которого доступна лаборатория
const AllowedDepartment = "경제학과"

// Study room limits
const (
	MinPartySize            = 3
	MaxPartySize            = 6
	MinSessionMinutes       = 15
	MaxSessionMinutes       = 120
	DefaultSweepIntervalSec = 30
)

// Admin settings limits
const (
	MinPinLength    = 4
	MaxNoticeLength = 2000
	SettingsID      = "singleton"
	DefaultAdminPin = "0423"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StudentIDPattern 8 или 9 цифр
var StudentIDPattern = regexp.MustCompile(`^\d{8,9}$`)

// LoosePhonePattern хотя бы 7 цифр подряд, используется для контакта лидера в студии
var LoosePhonePattern = regexp.MustCompile(`\d{7,}`)
