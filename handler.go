package genconn

import (
	"context"
	"fmt"
	"sync"
)

// CompletionHandler получает окончательное решение координатора по ветви. Только здесь побочные эффекты
// участника становятся видимыми (OnCommit) или отбрасываются (OnRollback): сам участник не транзакционен.
// Для каждой ветви вызывается ровно один из методов и ровно один раз.
type CompletionHandler interface {
	OnCommit(ctx context.Context, id BranchID) error
	OnRollback(ctx context.Context, id BranchID) error
}

// HandlerFuncs позволяет использовать пару функций как [CompletionHandler]. Незаданная функция ничего не делает.
type HandlerFuncs struct {
	Commit   func(ctx context.Context, id BranchID) error
	Rollback func(ctx context.Context, id BranchID) error
}

func (h HandlerFuncs) OnCommit(ctx context.Context, id BranchID) error {
	if h.Commit == nil {
		return nil
	}
	return h.Commit(ctx, id)
}

func (h HandlerFuncs) OnRollback(ctx context.Context, id BranchID) error {
	if h.Rollback == nil {
		return nil
	}
	return h.Rollback(ctx, id)
}

// HandlerRegistry - реестр обработчиков по имени ресурса. Может использоваться конкурентно.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]CompletionHandler
}

// Register регистрирует обработчик. Возвращает ErrInvalidOperation, если имя уже занято.
func (r *HandlerRegistry) Register(name string, h CompletionHandler) error {
	if name == "" || h == nil {
		return fmt.Errorf("%w: empty name or nil handler", ErrInvalidOperation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: handler %q already registered", ErrInvalidOperation, name)
	}
	if r.handlers == nil {
		r.handlers = make(map[string]CompletionHandler)
	}
	r.handlers[name] = h
	return nil
}

func (r *HandlerRegistry) Lookup(name string) (CompletionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

func (r *HandlerRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.handlers, name)
}
