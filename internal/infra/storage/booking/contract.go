package booking

import (
	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД.
// Подходят *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.Executor
