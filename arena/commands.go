package arena

// Commands provides a buffer for deferred operations that are executed once
// the current frame has been drawn. This keeps update and draw of a single
// frame running against the same state.
type Commands struct {
	next   State
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// SwitchTo queues a change of the active state. The last switch queued in a
// frame wins.
func (c *Commands) SwitchTo(state State) {
	c.next = state
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending reports whether any operation is queued.
func (c *Commands) Pending() bool {
	return c.next != nil || len(c.defers) > 0
}

// Flush runs all deferred functions and returns the queued state switch (or
// nil), resetting the buffer state.
func (c *Commands) Flush() State {
	for _, df := range c.defers {
		df.fn()
	}

	next := c.next
	c.next = nil
	c.defers = c.defers[:0]
	return next
}
