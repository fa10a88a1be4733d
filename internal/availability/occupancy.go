package availability

import "github.com/m04kA/EconLab-ReservationService/internal/domain"

// OccupiedSeats возвращает занятые места на (date, slot): номер места -> бронирование
func OccupiedSeats(bookings []*domain.Booking, date string, slot domain.SlotHour) map[int]*domain.Booking {
	occupied := make(map[int]*domain.Booking)
	for _, b := range bookings {
		if b.Matches(date, slot) {
			occupied[b.SeatNumber] = b
		}
	}
	return occupied
}

// FreeSeatCount количество свободных бронируемых мест
func FreeSeatCount(occupied map[int]*domain.Booking) int {
	free := 0
	for seat := 1; seat < domain.FirstNonReservableSeat; seat++ {
		if _, taken := occupied[seat]; !taken {
			free++
		}
	}
	return free
}
