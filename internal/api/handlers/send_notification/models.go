package send_notification

// SendNotificationRequest HTTP request model
type SendNotificationRequest struct {
	BookingIDs []string `json:"bookingIds" validate:"max=500,dive,required"`
	Phones     []string `json:"phones" validate:"max=500,dive,required"`
	Message    string   `json:"message" validate:"required,max=1000"`
}

// SendNotificationResponse HTTP response model
type SendNotificationResponse struct {
	Numbers    []string `json:"numbers"`
	MissingIDs []string `json:"missingIds"`
}
