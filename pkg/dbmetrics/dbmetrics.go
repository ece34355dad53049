package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/inalogystics/DeskBookingService/pkg/metrics"
)

// DBExecutor минимальный интерфейс для выполнения запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db          *sql.DB
	m           *metrics.Metrics
	serviceName string
}

// Tx обёртка над *sql.Tx с метриками
type Tx struct {
	tx          *sql.Tx
	m           *metrics.Metrics
	serviceName string
}

// Wrap оборачивает *sql.DB в обёртку с метриками
func Wrap(db *sql.DB, m *metrics.Metrics, serviceName string) *DB {
	return &DB{db: db, m: m, serviceName: serviceName}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// метрик connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, serviceName)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
			d.m.DBConnectionsIdle.Set(float64(stats.Idle))
			d.m.DBConnectionsInUse.Set(float64(stats.InUse))
		}
	}
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.m.ObserveDBQuery(d.serviceName, "exec", statusLabel(err), time.Since(start).Seconds())
	return res, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.m.ObserveDBQuery(d.serviceName, "query", statusLabel(err), time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.m.ObserveDBQuery(d.serviceName, "query_row", "ok", time.Since(start).Seconds())
	return row
}

// BeginTx начинает транзакцию, возвращая обёртку с метриками
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, m: d.m, serviceName: d.serviceName}, nil
}

// ExecContext выполняет запрос в транзакции с записью метрик
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.m.ObserveDBQuery(t.serviceName, "tx_exec", statusLabel(err), time.Since(start).Seconds())
	return res, err
}

// QueryContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.m.ObserveDBQuery(t.serviceName, "tx_query", statusLabel(err), time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.m.ObserveDBQuery(t.serviceName, "tx_query_row", "ok", time.Since(start).Seconds())
	return row
}

// Commit завершает транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
