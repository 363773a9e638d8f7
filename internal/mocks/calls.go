package mocks

import "sync"

// Calls records the arguments of every call to one mock method.
type Calls struct {
	mu   sync.Mutex
	args [][]any
}

func (c *Calls) record(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.args = append(c.args, args)
}

// Count returns the number of recorded calls.
func (c *Calls) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.args)
}

// Args returns the arguments of the i-th call, excluding the context.
func (c *Calls) Args(i int) []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.args[i]
}
