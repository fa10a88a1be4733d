package session

import "github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"

type DBExecutor = dbmetrics.Executor
