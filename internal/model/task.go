package model

import "strings"

// Task is the domain model for a todo entry.
// Comparable by value: two tasks are equal when name and completion match.
type Task struct {
	Name   string `json:"name"`
	IsDone bool   `json:"is_done"`
}

// NewTask returns a pending task. Any name is accepted, including "".
// Invalid UTF-8 is replaced with U+FFFD so the in-memory name matches what
// the JSON state file can hold.
func NewTask(name string) Task {
	return Task{Name: strings.ToValidUTF8(name, "\uFFFD")}
}
