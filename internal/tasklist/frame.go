package tasklist

// Row is one task as shown by a render host.
type Row struct {
	Position int
	Name     string
	IsDone   bool
	Pending  bool // marked for deletion, removed on the next tick
}

// Frame is what a render host receives each tick.
type Frame struct {
	Rows  []Row
	Input string
}

// Event is a mutation intent collected while rendering a frame.
type Event interface {
	event()
}

// Submit adds a task named Text and clears the input buffer.
type Submit struct{ Text string }

// Toggle flips the task at Position.
type Toggle struct{ Position int }

// Delete marks the task at Position for removal on the next tick.
type Delete struct{ Position int }

// InputChanged replaces the input buffer.
type InputChanged struct{ Text string }

func (Submit) event()       {}
func (Toggle) event()       {}
func (Delete) event()       {}
func (InputChanged) event() {}

// Renderer displays a frame and reports what the user did with it.
type Renderer interface {
	Render(f Frame) []Event
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(f Frame) []Event

// Render calls fn(f).
func (fn RenderFunc) Render(f Frame) []Event { return fn(f) }

// Snapshot returns the current frame without running a tick.
func (c *Controller) Snapshot() Frame {
	rows := make([]Row, len(c.tasks))
	for i, t := range c.tasks {
		_, pending := c.pending[i]
		rows[i] = Row{Position: i, Name: t.Name, IsDone: t.IsDone, Pending: pending}
	}
	return Frame{Rows: rows, Input: c.input}
}
