package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// ErrTransaction возвращается при ошибках начала или фиксации транзакции
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner источник транзакций (*dbmetrics.DB или обёртка над *sql.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функцию внутри транзакции,
// передавая транзакцию через контекст (см. dbmetrics.GetExecutor)
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// NewSQLTransactionManager создает менеджер транзакций поверх обычного *sql.DB
func NewSQLTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: sqlBeginner{db: db}}
}

// DoReadOnly выполняет fn в read-only транзакции с единым снимком данных
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}
