package tasklist

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Drumstickz64/todolist/internal/model"
)

// persisted is the on-disk shape. Only tasks survive a restart.
type persisted struct {
	Tasks []model.Task `json:"tasks"`
}

// decoded mirrors persisted with pointer elements so a null entry in the
// tasks array can be told apart from an empty task.
type decoded struct {
	Tasks []*model.Task `json:"tasks"`
}

// Serialize encodes the task list. The pending set and input buffer are
// never included.
func (c *Controller) Serialize() ([]byte, error) {
	tasks := c.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(persisted{Tasks: tasks}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Deserialize rebuilds a Controller from a Serialize blob. Empty or
// malformed input, including a null entry in the tasks array, yields an
// empty Controller.
func Deserialize(blob []byte, opts ...Option) *Controller {
	c := New(opts...)
	if len(bytes.TrimSpace(blob)) == 0 {
		return c
	}
	var d decoded
	if err := json.Unmarshal(blob, &d); err != nil {
		c.log.Warn("saved state unreadable, starting empty", "error", err)
		return c
	}
	tasks := make([]model.Task, 0, len(d.Tasks))
	for i, t := range d.Tasks {
		if t == nil {
			c.log.Warn("saved state has a null task, starting empty", "position", i)
			return c
		}
		tasks = append(tasks, *t)
	}
	c.tasks = tasks
	c.log.Info("state restored", "tasks", len(c.tasks))
	return c
}
