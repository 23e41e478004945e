package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// Elevated reports whether the priority is High or Urgent.
func (p Priority) Elevated() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}

	return false
}

// Task is a unit of workflow, optionally tied to a client.
type Task struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Priority       Priority
	Status         TaskStatus
	DueDate        time.Time
	Category       string
	ClientID       *uuid.UUID
	EstimatedHours time.Duration
	ActualHours    *time.Duration
}

func (t Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrMissingID
	}

	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task %s: %w", t.ID, ErrEmptyName)
	}

	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: %w %q", t.ID, ErrUnknownPriority, t.Priority)
	}

	if !t.Status.Valid() {
		return fmt.Errorf("task %s: %w %q", t.ID, ErrUnknownStatus, t.Status)
	}

	if t.DueDate.IsZero() {
		return fmt.Errorf("task %s: %w", t.ID, ErrZeroDate)
	}

	if t.EstimatedHours < 0 || (t.ActualHours != nil && *t.ActualHours < 0) {
		return fmt.Errorf("task %s: %w", t.ID, ErrInvalidDuration)
	}

	return nil
}
