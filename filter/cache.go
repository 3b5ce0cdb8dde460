package filter

import (
	"container/list"
	"sync"
)

// programCache keeps the most recently compiled filters, keyed by expression
type programCache struct {
	capacity int
	order    *list.List
	entries  map[string]*list.Element
	mu       sync.Mutex
}

type cached struct {
	expression string
	filter     CompiledFilter
}

func newProgramCache(capacity int) *programCache {
	return &programCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

func (c *programCache) get(expression string) (CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cached).filter, true
}

func (c *programCache) put(expression string, f CompiledFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[expression]; ok {
		el.Value.(*cached).filter = f
		c.order.MoveToFront(el)
		return
	}

	c.entries[expression] = c.order.PushFront(&cached{expression: expression, filter: f})

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cached).expression)
	}
}

func (c *programCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

func (c *programCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
