package bulk_cancel

import (
	bulkCancel "github.com/m04kA/EconLab-ReservationService/internal/usecase/bulk_cancel"
)

// BulkCancelRequest HTTP request model
type BulkCancelRequest struct {
	IDs     []string `json:"ids" validate:"required,min=1,max=500,dive,required"`
	Message string   `json:"message" validate:"max=1000"`
	Notify  bool     `json:"notify"`
}

// BulkCancelResponse HTTP response model
type BulkCancelResponse struct {
	Cancelled         int      `json:"cancelled"`
	CancelledIDs      []string `json:"cancelledIds"`
	MissingIDs        []string `json:"missingIds"`
	Phones            []string `json:"phones"`
	Notified          bool     `json:"notified"`
	NotificationError string   `json:"notificationError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkCancelRequest) ToUseCaseRequest() *bulkCancel.Request {
	return &bulkCancel.Request{
		IDs:     r.IDs,
		Message: r.Message,
		Notify:  r.Notify,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkCancel.Response) *BulkCancelResponse {
	return &BulkCancelResponse{
		Cancelled:         resp.Cancelled,
		CancelledIDs:      nonNil(resp.CancelledIDs),
		MissingIDs:        nonNil(resp.MissingIDs),
		Phones:            nonNil(resp.Phones),
		Notified:          resp.Notified,
		NotificationError: resp.NotificationError,
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
