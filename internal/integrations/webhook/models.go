package webhook

import "time"

// Payload тело уведомления об отмене бронирований
type Payload struct {
	Numbers      []string  `json:"numbers"`
	Message      string    `json:"message"`
	CancelledIDs []string  `json:"cancelledIds"`
	Timestamp    time.Time `json:"timestamp"`
}
