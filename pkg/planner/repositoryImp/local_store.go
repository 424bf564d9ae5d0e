package repositoryImp

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"studyplan/entities"
	"studyplan/pkg/planner/repository"
)

const cacheKeyPrefix = "planners:"

type localStore struct {
	kv  repository.KV
	now func() time.Time
}

// NewLocalStore layers the planner-list JSON codec over the KV cache.
func NewLocalStore(kv repository.KV) repository.LocalStore {
	return &localStore{kv: kv, now: time.Now}
}

// NewLocalStoreWithClock is used by tests that need fixed timestamps.
func NewLocalStoreWithClock(kv repository.KV, now func() time.Time) repository.LocalStore {
	return &localStore{kv: kv, now: now}
}

// NewLocalID mints a cache-side planner id. Remote ids come from the
// document store, so the uuid suffix guarantees the two never collide.
func NewLocalID() string { return "planner-" + uuid.NewString() }

func NewTaskID() string { return "task-" + uuid.NewString() }

func (s *localStore) key(ownerID string) string { return cacheKeyPrefix + ownerID }

func (s *localStore) stamp() string { return s.now().UTC().Format(time.RFC3339) }

// List reads the cached planner list. Unreadable or malformed content is
// treated as an empty collection.
func (s *localStore) List(ownerID string) []entities.Planner {
	raw, ok, err := s.kv.Read(s.key(ownerID))
	if err != nil {
		log.Printf("[cache] read %s: %v", ownerID, err)
		return []entities.Planner{}
	}
	if !ok || raw == "" {
		return []entities.Planner{}
	}
	var planners []entities.Planner
	if err := json.Unmarshal([]byte(raw), &planners); err != nil {
		log.Printf("[cache] malformed planner list for %s, treating as empty: %v", ownerID, err)
		return []entities.Planner{}
	}
	if planners == nil {
		return []entities.Planner{}
	}
	for i := range planners {
		planners[i].Sanitize()
	}
	return planners
}

func (s *localStore) ReplaceAll(ownerID string, planners []entities.Planner) error {
	if planners == nil {
		planners = []entities.Planner{}
	}
	raw, err := json.Marshal(planners)
	if err != nil {
		return err
	}
	return s.kv.Write(s.key(ownerID), string(raw))
}

func (s *localStore) Save(ownerID string, p entities.Planner) (entities.Planner, error) {
	if p.ID == "" {
		p.ID = NewLocalID()
	}
	now := s.stamp()
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.UserID = ownerID
	p.Sanitize()

	planners := s.List(ownerID)
	replaced := false
	for i := range planners {
		if planners[i].ID == p.ID {
			planners[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		planners = append(planners, p)
	}
	return p, s.ReplaceAll(ownerID, planners)
}

func (s *localStore) Update(ownerID string, p entities.Planner) (entities.Planner, error) {
	planners := s.List(ownerID)
	for i := range planners {
		if planners[i].ID == p.ID {
			p.UpdatedAt = s.stamp()
			if p.CreatedAt == "" {
				p.CreatedAt = planners[i].CreatedAt
			}
			p.Sanitize()
			planners[i] = p
			return p, s.ReplaceAll(ownerID, planners)
		}
	}
	return entities.Planner{}, repository.ErrNotFound
}

func (s *localStore) Delete(ownerID, id string) error {
	planners := s.List(ownerID)
	kept := planners[:0]
	for _, p := range planners {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(planners) {
		return repository.ErrNotFound
	}
	return s.ReplaceAll(ownerID, kept)
}

func (s *localStore) Get(ownerID, id string) (*entities.Planner, error) {
	for _, p := range s.List(ownerID) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ToggleTask flips one task's completion flag and recomputes progress so
// the stored record and the returned record always agree.
func (s *localStore) ToggleTask(ownerID, plannerID, taskID string, completed bool) (*entities.Planner, error) {
	planners := s.List(ownerID)
	for i := range planners {
		if planners[i].ID != plannerID {
			continue
		}
		found := false
		for j := range planners[i].Tasks {
			if planners[i].Tasks[j].ID == taskID {
				planners[i].Tasks[j].Completed = completed
				found = true
				break
			}
		}
		if !found {
			return nil, repository.ErrNotFound
		}
		planners[i].Progress = entities.TaskProgress(planners[i].Tasks)
		planners[i].UpdatedAt = s.stamp()
		if err := s.ReplaceAll(ownerID, planners); err != nil {
			return nil, err
		}
		out := planners[i]
		return &out, nil
	}
	return nil, repository.ErrNotFound
}
