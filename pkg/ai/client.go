// pkg/ai/client.go

package ai

import (
	"studyplan/pkg/planner/types"
)

// Client turns assignment metadata into an ordered task breakdown.
// extraContext carries optional study notes appended to the prompt.
type Client interface {
	GenerateTasks(form types.AssignmentForm, assignmentType, extraContext string) ([]types.TaskDraft, error)
}
