package repository

import (
	"errors"

	"studyplan/entities"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("planner not found")
	ErrRemoteDisabled   = errors.New("remote store not configured")
)

// RemoteStore is the hosted document store. It assigns ids on Create and
// is the source of truth whenever it is reachable.
type RemoteStore interface {
	Create(ownerID string, p *entities.Planner) (string, error)
	ListByOwner(ownerID string) ([]entities.Planner, error)
	Update(id string, p *entities.Planner) error
	Delete(id string) error
	GetByID(id string) (*entities.Planner, error)
}

// KV is the durable string cache available without connectivity.
type KV interface {
	Read(key string) (string, bool, error)
	Write(key, value string) error
}

// LocalStore keeps per-owner planner lists as JSON in the KV cache.
// A corrupt or missing list reads as empty, never as an error.
type LocalStore interface {
	List(ownerID string) []entities.Planner
	ReplaceAll(ownerID string, planners []entities.Planner) error
	Save(ownerID string, p entities.Planner) (entities.Planner, error)
	Update(ownerID string, p entities.Planner) (entities.Planner, error)
	Delete(ownerID, id string) error
	Get(ownerID, id string) (*entities.Planner, error)
	ToggleTask(ownerID, plannerID, taskID string, completed bool) (*entities.Planner, error)
}
