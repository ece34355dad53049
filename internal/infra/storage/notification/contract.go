package notification

import (
	"context"
	"database/sql"

	"github.com/inalogystics/DeskBookingService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов к базе данных
type DBExecutor = dbmetrics.DBExecutor

// TxExecutor интерфейс для выполнения запросов внутри транзакции
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
