package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Name       string
	StudentID  string
	Phone      string
	Department string
	Date       string // YYYY-MM-DD
	SlotHour   int    // 18, 19 или 20
	SeatNumber *int   // nil, если место не выбрано
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string
	SeatNumber int
	Date       string
	SlotHour   int
	Name       string
	StudentID  string
	Phone      string
	Department string
	CreatedAt  time.Time
}
