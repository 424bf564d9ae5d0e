package types

// AssignmentForm is the metadata a student submits for one assignment.
type AssignmentForm struct {
	Title        string `json:"title"`
	Topic        string `json:"topic"`
	DueDate      string `json:"dueDate"` // YYYY-MM-DD
	Requirements string `json:"requirements,omitempty"`
	Deliverables string `json:"deliverables,omitempty"`
	Resources    string `json:"resources,omitempty"`
	ShowTips     bool   `json:"showTips"`
}

// TaskDraft is one generated task before dates are attached.
type TaskDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
}
