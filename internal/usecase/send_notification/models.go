package send_notification

// Request модель запроса ручного уведомления
type Request struct {
	BookingIDs []string
	Phones     []string // дополнительные номера вне бронирований
	Message    string
}

// Response результат отправки
type Response struct {
	Numbers    []string
	MissingIDs []string
}
