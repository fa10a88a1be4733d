package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	StudentID string `json:"studentId"`
}
