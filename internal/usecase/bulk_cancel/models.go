package bulk_cancel

// Request модель запроса массовой отмены
type Request struct {
	IDs     []string
	Message string // текст уведомления
	Notify  bool   // отправить уведомление на webhook после отмены
}

// Response результат массовой отмены
type Response struct {
	Cancelled         int
	CancelledIDs      []string
	MissingIDs        []string
	Phones            []string // отформатированные, без повторов
	Notified          bool
	NotificationError string // отмена не откатывается при ошибке уведомления
}
