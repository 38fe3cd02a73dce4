package fixtures

// orderedIndex хранит элементы по ключу и помнит порядок вставки
type orderedIndex[T any] struct {
	items map[string]T
	keys  []string
}

func newOrderedIndex[T any]() *orderedIndex[T] {
	return &orderedIndex[T]{items: make(map[string]T)}
}

func (ix *orderedIndex[T]) has(key string) bool {
	_, ok := ix.items[key]
	return ok
}

func (ix *orderedIndex[T]) get(key string) (T, bool) {
	v, ok := ix.items[key]
	return v, ok
}

// put вставляет или заменяет; при замене позиция сохраняется
func (ix *orderedIndex[T]) put(key string, v T) {
	if !ix.has(key) {
		ix.keys = append(ix.keys, key)
	}
	ix.items[key] = v
}

func (ix *orderedIndex[T]) remove(key string) bool {
	if !ix.has(key) {
		return false
	}
	delete(ix.items, key)
	for i, k := range ix.keys {
		if k == key {
			ix.keys = append(ix.keys[:i], ix.keys[i+1:]...)
			break
		}
	}
	return true
}

func (ix *orderedIndex[T]) first() (T, bool) {
	if len(ix.keys) == 0 {
		var zero T
		return zero, false
	}
	return ix.items[ix.keys[0]], true
}

func (ix *orderedIndex[T]) values() []T {
	out := make([]T, 0, len(ix.keys))
	for _, k := range ix.keys {
		out = append(out, ix.items[k])
	}
	return out
}

func (ix *orderedIndex[T]) len() int {
	return len(ix.keys)
}
