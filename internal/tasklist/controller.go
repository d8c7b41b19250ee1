// Package tasklist holds the to-do list state and the rules for mutating it.
//
// A Controller is driven once per frame by a render host through Tick. Each
// tick first applies the deletions requested during the previous tick, then
// hands the current Frame to a Renderer and applies the events it returns.
// Deleting by position is deferred this way so positions never shift while a
// frame's events are being collected.
//
// A Controller is not safe for concurrent use; the host's UI loop owns it.
package tasklist

import (
	"github.com/Drumstickz64/todolist/internal/logging"
	"github.com/Drumstickz64/todolist/internal/model"
)

// Controller owns the ordered task list, the pending-deletion set and the
// input buffer.
type Controller struct {
	tasks   []model.Task
	pending map[int]struct{}
	input   string
	log     *logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for breadcrumbs on ignored operations.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an empty Controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		pending: make(map[int]struct{}),
		log:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddTask appends a new pending task named name.
func (c *Controller) AddTask(name string) {
	c.tasks = append(c.tasks, model.NewTask(name))
	c.log.Debug("task added", "position", len(c.tasks)-1)
}

// ToggleDone flips the completion flag of the task at i.
// Out-of-range positions are ignored.
func (c *Controller) ToggleDone(i int) {
	if !c.valid(i) {
		c.log.Debug("toggle ignored", "position", i, "len", len(c.tasks))
		return
	}
	c.tasks[i].IsDone = !c.tasks[i].IsDone
}

// MarkForDeletion schedules the task at i for removal on the next deletion
// pass. Out-of-range positions are ignored.
func (c *Controller) MarkForDeletion(i int) {
	if !c.valid(i) {
		c.log.Debug("delete ignored", "position", i, "len", len(c.tasks))
		return
	}
	c.pending[i] = struct{}{}
}

// ApplyPendingDeletions removes every marked task, keeping the survivors in
// order, and clears the pending set.
func (c *Controller) ApplyPendingDeletions() {
	if len(c.pending) == 0 {
		return
	}
	kept := c.tasks[:0:0]
	for i, t := range c.tasks {
		if _, drop := c.pending[i]; drop {
			continue
		}
		kept = append(kept, t)
	}
	c.log.Debug("deletions applied", "removed", len(c.tasks)-len(kept))
	c.tasks = kept
	clear(c.pending)
}

// Tick runs one frame: pending deletions are applied, r renders the
// resulting frame, and the events r returns are applied in order.
// A nil Renderer only applies deletions.
func (c *Controller) Tick(r Renderer) {
	c.ApplyPendingDeletions()
	if r == nil {
		return
	}
	c.Apply(r.Render(c.Snapshot())...)
}

// Apply applies events in order.
func (c *Controller) Apply(events ...Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case Submit:
			c.AddTask(e.Text)
			c.input = ""
		case Toggle:
			c.ToggleDone(e.Position)
		case Delete:
			c.MarkForDeletion(e.Position)
		case InputChanged:
			c.input = e.Text
		default:
			c.log.Warn("unknown event ignored", "event", ev)
		}
	}
}

// Input returns the in-progress task name.
func (c *Controller) Input() string { return c.input }

// SetInput replaces the in-progress task name.
func (c *Controller) SetInput(text string) { c.input = text }

// SubmitInput adds a task named after the input buffer and clears it.
func (c *Controller) SubmitInput() {
	c.Apply(Submit{Text: c.input})
}

// Tasks returns a copy of the task list.
func (c *Controller) Tasks() []model.Task {
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks, including those marked for deletion.
func (c *Controller) Len() int { return len(c.tasks) }

// HasPending reports whether any deletion is waiting for the next tick.
func (c *Controller) HasPending() bool { return len(c.pending) > 0 }

// Stats counts done and pending tasks.
func (c *Controller) Stats() (done, pending int) {
	for _, t := range c.tasks {
		if t.IsDone {
			done++
		} else {
			pending++
		}
	}
	return
}

func (c *Controller) valid(i int) bool {
	return i >= 0 && i < len(c.tasks)
}
