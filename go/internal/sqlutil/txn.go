package sqlutil

import (
	"context"
	"database/sql"
	"fmt"
)

// Run executes fn against transaction-bound queries. Any error from fn
// rolls the transaction back and is returned unwrapped so sentinel errors
// survive for errors.Is at the caller.
func Run[T any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(newQueries(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
