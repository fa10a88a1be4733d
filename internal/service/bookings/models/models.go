package models

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// CreateParams поля нового бронирования. Значения уже прошли валидацию
type CreateParams struct {
	Name       string
	StudentID  string
	Phone      string
	Department string
	Date       string
	SlotHour   domain.SlotHour
	SeatNumber int
}

// BookingResponse бронирование для администратора
type BookingResponse struct {
	ID         string `json:"id"`
	SeatNumber int    `json:"seatNumber"`
	Date       string `json:"date"`
	SlotHour   int    `json:"slotHour"`
	SlotLabel  string `json:"slotLabel"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
}

// PublicBookingResponse бронирование со скрытыми персональными данными
type PublicBookingResponse struct {
	ID         string `json:"id"`
	SeatNumber int    `json:"seatNumber"`
	Date       string `json:"date"`
	SlotHour   int    `json:"slotHour"`
	SlotLabel  string `json:"slotLabel"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Phone      string `json:"phone"`
	CreatedAt  string `json:"createdAt"`
}

// FromDomainBooking конвертирует бронирование в ответ администратору
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		SeatNumber: b.SeatNumber,
		Date:       b.Date,
		SlotHour:   int(b.SlotHour),
		SlotLabel:  b.SlotHour.Label(),
		Name:       b.Name,
		StudentID:  b.StudentID,
		Phone:      masking.FormatPhone(b.Phone),
		Department: b.Department,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// ToPublicBooking скрывает имя, студенческий и телефон
func ToPublicBooking(b *domain.Booking) *PublicBookingResponse {
	return &PublicBookingResponse{
		ID:         b.ID,
		SeatNumber: b.SeatNumber,
		Date:       b.Date,
		SlotHour:   int(b.SlotHour),
		SlotLabel:  b.SlotHour.Label(),
		Name:       masking.Name(b.Name),
		StudentID:  masking.StudentID(b.StudentID),
		Phone:      masking.Phone(b.Phone),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// ToPublicBookingList скрывает персональные данные списка
func ToPublicBookingList(bookings []*domain.Booking) []*PublicBookingResponse {
	result := make([]*PublicBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, ToPublicBooking(b))
	}
	return result
}
