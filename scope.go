package genconn

import (
	"context"

	"github.com/qbixus/genconn-go/internal"
)

// WithTransactionScope возвращает производный по отношению к ctx контекст с новой транзакционной зоной.
// Если не указано иное, то зона создается с опцией WithTxRequired.
//
// Возвращает результирующий контекст и complete- и dispose- функции для зоны. dispose безопасно вызывать через
// defer после complete.
func WithTransactionScope(ctx context.Context, opts ...ScopeOption) (
	newCtx context.Context, complete func(context.Context) error, dispose func(context.Context) error,
) {
	internal.Assert(ctx != nil, "#args: ctx")
	options := scopeOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.createScope == nil {
		options.createScope = createRequiresScope
	}
	return options.createScope(ctx, &options)
}

type scopeFunc = func(context.Context) error

func createTransactionScope(ctx context.Context, options *scopeOptions) (context.Context, scopeFunc, scopeFunc) {
	scope := transactionScope{tx: options.tx}
	ctx = WithTransaction(ctx, scope.tx)
	return ctx, scope.complete, scope.dispose
}

func createRequiresScope(ctx context.Context, options *scopeOptions) (context.Context, scopeFunc, scopeFunc) {
	if tx := CurrentTransaction(ctx); tx != nil {
		scope := transactionScope{tx: tx}
		return ctx, scope.complete, scope.dispose
	}
	return createRequiresNewScope(ctx, options)
}

func createRequiresNewScope(ctx context.Context, _ *scopeOptions) (context.Context, scopeFunc, scopeFunc) {
	scope := committableScope{}
	ctx = WithTransaction(ctx, &scope.tx)
	return ctx, scope.complete, scope.dispose
}

func createSuppressScope(ctx context.Context, _ *scopeOptions) (context.Context, scopeFunc, scopeFunc) {
	scope := emptyScope{}
	ctx = WithTransaction(ctx, nil)
	return ctx, scope.complete, scope.dispose
}

// ---

// committableScope владеет транзакцией: complete фиксирует ее, dispose без complete - отменяет.
type committableScope struct {
	tx         CommittableTransaction
	terminated bool
}

func (s *committableScope) dispose(ctx context.Context) error {
	if s.terminated {
		return nil
	}
	s.terminated = true
	return s.tx.Rollback(ctx)
}

func (s *committableScope) complete(ctx context.Context) error {
	if s.terminated {
		return ErrInvalidOperation
	}
	s.terminated = true
	return s.tx.Commit(ctx)
}

// ---

// transactionScope присоединяется к чужой транзакции: решение принимает ее владелец, а dispose без complete
// лишь помечает транзакцию к отмене.
type transactionScope struct {
	tx         Transaction
	terminated bool
}

func (s *transactionScope) dispose(context.Context) error {
	if s.terminated {
		return nil
	}
	s.terminated = true
	return s.tx.SetRollbackOnly()
}

func (s *transactionScope) complete(context.Context) error {
	if s.terminated {
		return ErrInvalidOperation
	}
	s.terminated = true
	return nil
}

// ---

type emptyScope struct {
	terminated bool
}

func (s *emptyScope) dispose(context.Context) error {
	return nil
}

func (s *emptyScope) complete(context.Context) error {
	if s.terminated {
		return ErrInvalidOperation
	}
	s.terminated = true
	return nil
}

// ---

type ScopeOption func(*scopeOptions)

// WithScopeTransaction создает зону с указанной транзакцией.
func WithScopeTransaction(tx Transaction) ScopeOption {
	internal.Assert(tx != nil, "#args")
	return func(options *scopeOptions) {
		options.tx = tx
		options.createScope = createTransactionScope
	}
}

// WithTxRequired создает зону либо с текущей транзакцией, либо с новой.
func WithTxRequired() ScopeOption {
	return func(options *scopeOptions) { options.createScope = createRequiresScope }
}

// WithRequiresNewTx создает зону с новой транзакцией.
func WithRequiresNewTx() ScopeOption {
	return func(options *scopeOptions) { options.createScope = createRequiresNewScope }
}

// WithSuppressTx создает зону без транзакции.
func WithSuppressTx() ScopeOption {
	return func(options *scopeOptions) { options.createScope = createSuppressScope }
}

type scopeOptions struct {
	tx          Transaction
	createScope func(context.Context, *scopeOptions) (context.Context, scopeFunc, scopeFunc)
}
