package memory

import (
	"strconv"
	"sync"
)

// Collection — универсальная in-memory коллекция записей с сохранением
// порядка вставки. Мьютекс сериализует мутации, чтобы параллельные запросы
// не теряли обновления и не получали одинаковые идентификаторы.
//
// Идентификаторы выдаёт монотонный счётчик: после удаления записи её ID
// повторно не используется.
type Collection[T any] struct {
	mu     sync.Mutex
	items  []T
	idOf   func(T) string
	lastID uint64
}

// NewCollection создаёт пустую коллекцию.
// idOf извлекает идентификатор из записи.
func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// GetAll возвращает копию всех записей в порядке вставки.
func (c *Collection[T]) GetAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// GetByID возвращает запись по идентификатору.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Find возвращает первую запись, для которой match вернул true.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add добавляет запись в конец коллекции.
// Уникальность полей не перепроверяется — вызывающий обязан пройти валидацию до Add.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// Replace заменяет запись с данным идентификатором на месте, сохраняя её позицию.
func (c *Collection[T]) Replace(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove удаляет запись по идентификатору и возвращает её.
func (c *Collection[T]) Remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return removed, true
		}
	}
	var zero T
	return zero, false
}

// Count возвращает текущее количество записей.
func (c *Collection[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// NextID выдаёт следующий идентификатор из монотонного счётчика.
func (c *Collection[T]) NextID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	return strconv.FormatUint(c.lastID, 10)
}
