package entities

import (
	"fmt"
	"math"
)

// GuestUserID marks planners created without a signed-in identity.
const GuestUserID = "guest"

// Sync states for a planner record. A record is "local" until a remote
// round-trip succeeds, then "synced". Remote copies arrive as "synced".
const (
	SyncLocal  = "local"
	SyncSynced = "synced"
)

type Task struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"` // bullet list, newline-separated "•" items
	Tip         *string `json:"tip"`
	StartDate   string  `json:"startDate"` // YYYY-MM-DD, inclusive
	EndDate     string  `json:"endDate"`   // YYYY-MM-DD, inclusive
	Completed   bool    `json:"completed"`
}

type Planner struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Topic          string `json:"topic"`
	DueDate        string `json:"dueDate"`
	AssignmentType string `json:"assignmentType"`
	Requirements   string `json:"requirements"`
	Deliverables   string `json:"deliverables"`
	Resources      string `json:"resources"`
	ShowTips       bool   `json:"showTips"`
	Tasks          []Task `json:"tasks"`
	Progress       int    `json:"progress"`
	UserID         string `json:"userId"`
	SyncState      string `json:"syncState,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// TaskProgress is round(100 * completed / total), 0 for an empty list.
func TaskProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}

// Sanitize fills defaults once, at construction time, so readers never
// have to null-check: tasks is always a non-nil slice, every task has a
// name, progress matches the task list, and ownerless planners belong to
// the guest identity.
func (p *Planner) Sanitize() {
	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	for i := range p.Tasks {
		if p.Tasks[i].Name == "" {
			p.Tasks[i].Name = fmt.Sprintf("Task %d", i+1)
		}
	}
	if p.AssignmentType == "" {
		p.AssignmentType = "essay"
	}
	if p.UserID == "" {
		p.UserID = GuestUserID
	}
	p.Progress = TaskProgress(p.Tasks)
}
