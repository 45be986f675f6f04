package booking

import "github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Транзакция (если есть) берётся из контекста через dbmetrics.GetExecutor
type DBExecutor = dbmetrics.DBExecutor
