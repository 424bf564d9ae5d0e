package service

import (
	"studyplan/entities"
	"studyplan/pkg/planner/types"
)

// PlannerService owns plan generation, reconciliation and mutations.
// The boolean result reports "saved locally only, will sync later".
type PlannerService interface {
	Generate(ownerID string, form types.AssignmentForm) (*entities.Planner, bool, error)
	List(ownerID string) ([]entities.Planner, error)
	Get(ownerID, id string) (*entities.Planner, error)
	Update(ownerID string, p entities.Planner) (*entities.Planner, bool, error)
	Delete(ownerID, id string) (bool, error)
	ToggleTask(ownerID, plannerID, taskID string, completed bool) (*entities.Planner, bool, error)
}
