package create_booking

import (
	"time"

	createBooking "github.com/m04kA/EconLab-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Date       string `json:"date"` // "2025-03-04"
	SlotHour   int    `json:"slotHour"`
	SeatNumber *int   `json:"seatNumber,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string `json:"id"`
	SeatNumber int    `json:"seatNumber"`
	Date       string `json:"date"`
	SlotHour   int    `json:"slotHour"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:       r.Name,
		StudentID:  r.StudentID,
		Phone:      r.Phone,
		Department: r.Department,
		Date:       r.Date,
		SlotHour:   r.SlotHour,
		SeatNumber: r.SeatNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		SeatNumber: resp.SeatNumber,
		Date:       resp.Date,
		SlotHour:   resp.SlotHour,
		Name:       resp.Name,
		StudentID:  resp.StudentID,
		Phone:      masking.FormatPhone(resp.Phone),
		Department: resp.Department,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
