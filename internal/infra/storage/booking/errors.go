package booking

import "errors"

var (
	// ErrSeatTaken возвращается, когда место на этот слот уже занято другим бронированием
	ErrSeatTaken = errors.New("booking.repository: seat already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncode возвращается при ошибке (де)сериализации записи в key-value хранилище
	ErrEncode = errors.New("booking.repository: failed to encode record")
)
