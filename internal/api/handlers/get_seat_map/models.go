package get_seat_map

import (
	getSeatMap "github.com/m04kA/EconLab-ReservationService/internal/usecase/get_seat_map"
)

// SeatResponse место на схеме
type SeatResponse struct {
	Number   int    `json:"number"`
	Status   string `json:"status"`
	Occupant string `json:"occupant,omitempty"`
}

// SeatMapResponse HTTP response model
type SeatMapResponse struct {
	Date        string         `json:"date"`
	SlotHour    int            `json:"slotHour"`
	SlotLabel   string         `json:"slotLabel"`
	Blocked     bool           `json:"blocked"`
	BlockReason string         `json:"blockReason,omitempty"`
	IsPast      bool           `json:"isPast"`
	FreeSeats   int            `json:"freeSeats"`
	Seats       []SeatResponse `json:"seats"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSeatMap.Response) *SeatMapResponse {
	seats := make([]SeatResponse, 0, len(resp.Seats))
	for _, s := range resp.Seats {
		seats = append(seats, SeatResponse{
			Number:   s.Number,
			Status:   string(s.Status),
			Occupant: s.OccupantMasked,
		})
	}

	return &SeatMapResponse{
		Date:        resp.Date,
		SlotHour:    resp.SlotHour,
		SlotLabel:   resp.SlotLabel,
		Blocked:     resp.Blocked,
		BlockReason: resp.BlockReason,
		IsPast:      resp.IsPast,
		FreeSeats:   resp.FreeSeats,
		Seats:       seats,
	}
}
