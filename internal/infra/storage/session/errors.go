package session

import "errors"

var (
	// ErrRoomBusy возвращается, когда в комнате уже идет активная сессия
	ErrRoomBusy = errors.New("session.repository: room is busy")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("session.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrEncode возвращается при ошибке (де)сериализации
	ErrEncode = errors.New("session.repository: failed to encode session")
)
