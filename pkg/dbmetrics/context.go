package dbmetrics

import "context"

type ctxKey struct{}

// txKey ключ для хранения активной транзакции в контексте
var txKey = ctxKey{}

// WithTx кладёт активную транзакцию в контекст
// Используется transaction manager'ами; репозитории достают исполнителя
// через GetExecutor.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает исполнителя запросов из контекста
// Если в контексте есть активная транзакция - возвращает её,
// иначе возвращает fallback (обычное соединение репозитория).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
