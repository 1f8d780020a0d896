package genconn

import (
	"context"
)

// WithTransaction возвращает производный контекст, несущий tx. nil убирает транзакцию из контекста.
func WithTransaction(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, contextKey[Transaction]{}, tx)
}

// CurrentTransaction возвращает транзакцию контекста или nil. Возвращаемое значение можно передать в
// [Shim.Enlist] как координатора.
func CurrentTransaction(ctx context.Context) Transaction {
	tx, ok := ctx.Value(contextKey[Transaction]{}).(Transaction)
	if !ok || tx == nil {
		return nil
	}
	return tx
}
