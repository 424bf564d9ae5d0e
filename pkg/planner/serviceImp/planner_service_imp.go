package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"time"

	"studyplan/entities"
	"studyplan/pkg/ai"
	"studyplan/pkg/metrics"
	"studyplan/pkg/planner/repository"
	"studyplan/pkg/planner/repositoryImp"
	"studyplan/pkg/planner/types"
	"studyplan/pkg/schedule"
)

// noteFetcher enriches the generator prompt from the form's resources
// field. Implemented by pkg/resource; nil disables enrichment.
type noteFetcher interface {
	Notes(resources string) string
}

type PlannerSvc struct {
	gen    ai.Client
	sched  schedule.Engine
	remote repository.RemoteStore
	local  repository.LocalStore
	notes  noteFetcher
	now    func() time.Time
}

var (
	ErrMissingFields = errors.New("title, topic and due date are required")
	ErrBadDueDate    = errors.New("due date must be a YYYY-MM-DD date")
	ErrPastDueDate   = errors.New("due date is in the past")
)

func NewPlannerService(gen ai.Client, sched schedule.Engine, remote repository.RemoteStore, local repository.LocalStore, notes noteFetcher) *PlannerSvc {
	return &PlannerSvc{gen: gen, sched: sched, remote: remote, local: local, notes: notes, now: time.Now}
}

func (s *PlannerSvc) stamp() string { return s.now().UTC().Format(time.RFC3339) }

// Generate runs the full pipeline: classify, generate the breakdown,
// attach dates, then persist remote-first with the cache as fallback.
func (s *PlannerSvc) Generate(ownerID string, form types.AssignmentForm) (*entities.Planner, bool, error) {
	if form.Title == "" || form.Topic == "" || form.DueDate == "" {
		return nil, false, ErrMissingFields
	}
	due, err := time.Parse("2006-01-02", form.DueDate)
	if err != nil {
		return nil, false, ErrBadDueDate
	}
	today := s.now()
	if due.Before(today.Truncate(24 * time.Hour)) {
		return nil, false, ErrPastDueDate
	}

	assignmentType := types.DetectAssignmentType(form.Title, form.Topic)

	extra := ""
	if s.notes != nil {
		extra = s.notes.Notes(form.Resources)
	}

	drafts, err := s.gen.GenerateTasks(form, assignmentType, extra)
	if err != nil {
		metrics.GeneratorRequests.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("generate tasks: %w", err)
	}
	metrics.GeneratorRequests.WithLabelValues("ok").Inc()

	windows, err := s.sched.TaskDates(today, due, len(drafts), assignmentType)
	if err != nil {
		return nil, false, err
	}

	tasks := make([]entities.Task, len(drafts))
	for i, d := range drafts {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("Task %d", i+1)
		}
		var tip *string
		if form.ShowTips {
			t := d.Tip
			tip = &t
		}
		tasks[i] = entities.Task{
			ID:          repositoryImp.NewTaskID(),
			Name:        name,
			Description: d.Description,
			Tip:         tip,
			StartDate:   windows[i].StartDate,
			EndDate:     windows[i].EndDate,
			Completed:   false,
		}
	}

	now := s.stamp()
	planner := entities.Planner{
		Title:          form.Title,
		Topic:          form.Topic,
		DueDate:        form.DueDate,
		AssignmentType: assignmentType,
		Requirements:   form.Requirements,
		Deliverables:   form.Deliverables,
		Resources:      form.Resources,
		ShowTips:       form.ShowTips,
		Tasks:          tasks,
		UserID:         ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	planner.Sanitize()

	localOnly := false
	if id, err := s.remote.Create(ownerID, &planner); err == nil {
		planner.ID = id
		planner.SyncState = entities.SyncSynced
	} else {
		log.Printf("[sync] remote create failed, saving locally: %v", err)
		metrics.SyncFallbacks.WithLabelValues("create").Inc()
		planner.SyncState = entities.SyncLocal
		localOnly = true
	}

	saved, err := s.local.Save(ownerID, planner)
	if err != nil {
		if !localOnly {
			// remote copy exists; the cache will catch up on next reconcile
			log.Printf("[cache] save after remote create failed: %v", err)
			return &planner, false, nil
		}
		return nil, false, err
	}
	return &saved, localOnly, nil
}

// List reconciles the cached and remote collections. A remote failure of
// any kind degrades to the cached view and is never surfaced as an error.
func (s *PlannerSvc) List(ownerID string) ([]entities.Planner, error) {
	local := s.local.List(ownerID)
	metrics.ReconcileRuns.Inc()

	remote, err := s.remote.ListByOwner(ownerID)
	if err != nil {
		log.Printf("[sync] remote list failed, using cache: %v", err)
		return local, nil
	}

	merged := Merge(local, remote)
	if err := s.local.ReplaceAll(ownerID, merged); err != nil {
		log.Printf("[cache] persist merged planners: %v", err)
	}
	return merged, nil
}

func (s *PlannerSvc) Get(ownerID, id string) (*entities.Planner, error) {
	if p, err := s.local.Get(ownerID, id); err == nil {
		return p, nil
	}
	p, err := s.remote.GetByID(id)
	if err != nil {
		// unreachable remote reads as absent; the cache stays authoritative
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *PlannerSvc) Update(ownerID string, p entities.Planner) (*entities.Planner, bool, error) {
	if p.ID == "" {
		return nil, false, repository.ErrNotFound
	}
	p.UserID = ownerID
	p.UpdatedAt = s.stamp()
	p.Sanitize()

	if err := s.remote.Update(p.ID, &p); err == nil {
		p.SyncState = entities.SyncSynced
		saved, err := s.local.Save(ownerID, p) // upsert mirrors the remote copy
		if err != nil {
			log.Printf("[cache] mirror updated planner: %v", err)
			return &p, false, nil
		}
		return &saved, false, nil
	} else {
		log.Printf("[sync] remote update failed, updating cache: %v", err)
	}

	metrics.SyncFallbacks.WithLabelValues("update").Inc()
	p.SyncState = entities.SyncLocal
	saved, err := s.local.Update(ownerID, p)
	if err != nil {
		return nil, false, err
	}
	return &saved, true, nil
}

// Delete removes a planner remote-first. A remote-side delete that fails
// still removes the cached copy so the record disappears for this
// session; remote absence is reconciled on the next List.
func (s *PlannerSvc) Delete(ownerID, id string) (bool, error) {
	if err := s.remote.Delete(id); err != nil {
		log.Printf("[sync] remote delete failed, deleting from cache: %v", err)
		metrics.SyncFallbacks.WithLabelValues("delete").Inc()
		if err := s.local.Delete(ownerID, id); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := s.local.Delete(ownerID, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	return false, nil
}

// ToggleTask flips one task's completion flag. Progress is recomputed
// before any write so the remote copy, the cached copy and the returned
// record never disagree.
func (s *PlannerSvc) ToggleTask(ownerID, plannerID, taskID string, completed bool) (*entities.Planner, bool, error) {
	cur, err := s.Get(ownerID, plannerID)
	if err != nil {
		return nil, false, err
	}

	updated := *cur
	updated.Tasks = make([]entities.Task, len(cur.Tasks))
	copy(updated.Tasks, cur.Tasks)
	found := false
	for i := range updated.Tasks {
		if updated.Tasks[i].ID == taskID {
			updated.Tasks[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil, false, repository.ErrNotFound
	}
	updated.Progress = entities.TaskProgress(updated.Tasks)
	updated.UpdatedAt = s.stamp()

	if err := s.remote.Update(plannerID, &updated); err == nil {
		updated.SyncState = entities.SyncSynced
		if saved, err := s.local.Save(ownerID, updated); err == nil {
			return &saved, false, nil
		}
		return &updated, false, nil
	} else {
		log.Printf("[sync] remote toggle failed, toggling in cache: %v", err)
	}

	metrics.SyncFallbacks.WithLabelValues("toggle").Inc()
	updated.SyncState = entities.SyncLocal
	saved, err := s.local.Save(ownerID, updated)
	if err != nil {
		return nil, false, err
	}
	return &saved, true, nil
}
