package bunrepo

import (
	"context"

	"github.com/uptrace/bun"
)

type txKey struct{}

// WithTx binds tx to ctx so repository calls made with the returned context
// run inside the transaction.
func WithTx(ctx context.Context, tx bun.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func (r baseRepository[T]) idb(ctx context.Context) bun.IDB {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return tx
	}
	return r.db
}
