package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clearpath-advisory/booking-service/pkg/dbmetrics"
	"github.com/clearpath-advisory/booking-service/pkg/txmanager"
)

const maxSerializationRetries = 3

// TransactionManager is the uninstrumented counterpart of pkg/txmanager,
// used when metrics are disabled and the repositories run on a bare *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a manager over a plain database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction, retrying on
// serialization conflicts. See pkg/txmanager for the instrumented variant.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxSerializationRetries; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("simpletxmanager: serialization retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin: %w", err)
	}

	txCtx := dbmetrics.ContextWithExecutor(ctx, plainTx{tx})

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %w", err)
	}
	return nil
}

// plainTx adapts *sql.Tx to dbmetrics.TxExecutor without instrumentation.
type plainTx struct {
	*sql.Tx
}
