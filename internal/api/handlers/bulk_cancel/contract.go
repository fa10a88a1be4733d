package bulk_cancel

import (
	"context"

	bulkCancel "github.com/m04kA/EconLab-ReservationService/internal/usecase/bulk_cancel"
)

type BulkCancelUseCase interface {
	Execute(ctx context.Context, req *bulkCancel.Request) (*bulkCancel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
