package genconn

import (
	"fmt"
)

// Factory создает и присоединяет [Shim] для ресурса с именем name, используя обработчик, зарегистрированный под
// этим именем в [HandlerRegistry]. Обработчик ищется при каждом вызове Enlist.
type Factory struct {
	name     string
	handlers *HandlerRegistry
	opts     []ShimOption
}

func NewFactory(name string, handlers *HandlerRegistry, opts ...ShimOption) *Factory {
	return &Factory{
		name:     name,
		handlers: handlers,
		opts:     append([]ShimOption{WithName(name)}, opts...),
	}
}

func (f *Factory) Name() string {
	return f.name
}

// Enlist возвращает новый Shim, присоединенный к активной транзакции coord.
//
// Возвращает ErrNoHandler если обработчик не зарегистрирован, и ошибки [Shim.Enlist].
func (f *Factory) Enlist(coord Coordinator) (*Shim, error) {
	if f.handlers == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, f.name)
	}
	h, ok := f.handlers.Lookup(f.name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, f.name)
	}

	shim := NewShim(h, f.opts...)
	if _, err := shim.Enlist(coord); err != nil {
		return nil, fmt.Errorf("%s: %w", f.name, err)
	}
	return shim, nil
}
