package tasklist

import (
	"slices"
	"testing"

	"github.com/Drumstickz64/todolist/internal/model"
)

// script returns a Renderer that records every frame and replays one batch
// of events per tick.
type script struct {
	batches [][]Event
	frames  []Frame
}

func (s *script) Render(f Frame) []Event {
	s.frames = append(s.frames, f)
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

func TestScenarioAddToggleTick(t *testing.T) {
	c := New()
	c.AddTask("buy milk")
	c.AddTask("walk dog")
	c.ToggleDone(0)
	c.Tick(nil)

	want := []model.Task{{Name: "buy milk", IsDone: true}, {Name: "walk dog"}}
	if got := c.Tasks(); !slices.Equal(got, want) {
		t.Errorf("Tasks() = %v, want %v", got, want)
	}
}

func TestDeletionLandsOnNextTick(t *testing.T) {
	c := withTasks("a", "b", "c")
	s := &script{batches: [][]Event{
		{Delete{Position: 0}, Toggle{Position: 1}},
		{Toggle{Position: 0}},
	}}

	c.Tick(s)
	if c.Len() != 3 {
		t.Fatalf("deletion applied too early, Len() = %d", c.Len())
	}
	snap := c.Snapshot()
	if !snap.Rows[0].Pending {
		t.Error("row 0 should be flagged pending")
	}
	if !snap.Rows[1].IsDone {
		t.Error("toggle should be immediate")
	}

	c.Tick(s)
	// The second frame is taken after deletions, so position 0 is now "b".
	if got := s.frames[1].Rows[0].Name; got != "b" {
		t.Fatalf("second frame row 0 = %q, want b", got)
	}
	want := []model.Task{{Name: "b"}, {Name: "c"}}
	if got := c.Tasks(); !slices.Equal(got, want) {
		t.Errorf("Tasks() = %v, want %v", got, want)
	}
}

func TestTickFrameContents(t *testing.T) {
	c := withTasks("a")
	c.SetInput("draft")
	s := &script{}
	c.Tick(s)

	if len(s.frames) != 1 {
		t.Fatalf("expected one frame, got %d", len(s.frames))
	}
	f := s.frames[0]
	if f.Input != "draft" {
		t.Errorf("Input = %q, want draft", f.Input)
	}
	want := []Row{{Position: 0, Name: "a"}}
	if !slices.Equal(f.Rows, want) {
		t.Errorf("Rows = %v, want %v", f.Rows, want)
	}
}

func TestApplyEvents(t *testing.T) {
	c := New()
	c.Apply(
		InputChanged{Text: "first"},
		Submit{Text: "first"},
		InputChanged{Text: "sec"},
	)
	if c.Input() != "sec" {
		t.Errorf("Input() = %q, want sec", c.Input())
	}
	if want := []string{"first"}; !slices.Equal(names(c), want) {
		t.Errorf("names = %q, want %q", names(c), want)
	}

	c.Apply(Submit{Text: "second"})
	if c.Input() != "" {
		t.Errorf("submit should clear input, got %q", c.Input())
	}
}

func TestRenderFunc(t *testing.T) {
	c := withTasks("a", "b")
	var seen int
	c.Tick(RenderFunc(func(f Frame) []Event {
		seen = len(f.Rows)
		return []Event{Toggle{Position: 1}}
	}))
	if seen != 2 {
		t.Errorf("renderer saw %d rows, want 2", seen)
	}
	if !c.Tasks()[1].IsDone {
		t.Error("event from RenderFunc was not applied")
	}
}
