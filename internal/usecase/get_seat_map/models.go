package get_seat_map

// SeatStatus состояние места на схеме
type SeatStatus string

const (
	SeatFree     SeatStatus = "free"
	SeatReserved SeatStatus = "reserved"
	SeatDisabled SeatStatus = "disabled"
)

// Block reasons
const (
	BlockReasonWeekday = "weekday"
	BlockReasonSlot    = "slot"
)

// Request модель запроса схемы мест
type Request struct {
	Date     string // YYYY-MM-DD
	SlotHour int
}

// Seat место на схеме
type Seat struct {
	Number         int
	Status         SeatStatus
	OccupantMasked string // маскированное имя занявшего, только для SeatReserved
}

// Response схема мест на (Date, SlotHour)
type Response struct {
	Date        string
	SlotHour    int
	SlotLabel   string
	Blocked     bool
	BlockReason string
	IsPast      bool
	FreeSeats   int
	Seats       []Seat
}
