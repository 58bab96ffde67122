package cache

import "time"

// Typed é uma visão tipada do Store para um tipo de dado.
// Os valores são guardados por valor; os snapshots não são alterados depois de montados.
type Typed[T any] struct {
	store *Store
}

func NewTyped[T any](store *Store) *Typed[T] {
	return &Typed[T]{store: store}
}

func (t *Typed[T]) Get(key string) (*T, bool) {
	data, ok := t.store.Get(key)
	return cast[T](data, ok)
}

func (t *Typed[T]) GetStale(key string) (*T, bool) {
	data, ok := t.store.GetStale(key)
	return cast[T](data, ok)
}

// Peek retorna o valor e se ele ainda é válido, sem remover entradas expiradas
func (t *Typed[T]) Peek(key string) (*T, bool, bool) {
	data, fresh, ok := t.store.Peek(key)
	value, ok := cast[T](data, ok)
	return value, fresh && ok, ok
}

func (t *Typed[T]) Set(key string, value T, ttl time.Duration) {
	t.store.Set(key, value, ttl)
}

func cast[T any](data any, ok bool) (*T, bool) {
	if !ok {
		return nil, false
	}

	value, ok := data.(T)
	if !ok {
		return nil, false
	}
	return &value, true
}
