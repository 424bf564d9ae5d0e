package reminder

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"studyplan/entities"
	"studyplan/pkg/planner/repository"
)

// Service sweeps cached planners once a day and records a summary of
// tasks that are due or overdue, mirroring the in-app daily reminder.
type Service struct {
	db    *gorm.DB
	local repository.LocalStore
	cron  *cron.Cron
	now   func() time.Time
}

func New(db *gorm.DB, local repository.LocalStore) *Service {
	return &Service{db: db, local: local, cron: cron.New(), now: time.Now}
}

// Start schedules the daily sweep; spec is a standard cron expression.
func (s *Service) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Sweep); err != nil {
		return fmt.Errorf("reminder cron: %w", err)
	}
	s.cron.Start()
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

type urgentTask struct {
	task         entities.Task
	plannerTitle string
}

// Sweep collects incomplete tasks with an end date at or before today
// across every cached owner, logs the summary and persists it.
func (s *Service) Sweep() {
	summary, count := s.DailySummary(s.now())
	if count == 0 {
		log.Printf("[reminder] no urgent tasks")
		return
	}
	log.Printf("[reminder] %s", summary)
	if err := s.db.Create(&entities.ReminderLog{Summary: summary, TaskCount: count}).Error; err != nil {
		log.Printf("[reminder] persist: %v", err)
	}
}

// DailySummary builds the reminder line for the given moment.
func (s *Service) DailySummary(now time.Time) (string, int) {
	today := now.Format("2006-01-02")
	var urgent []urgentTask

	for _, owner := range s.owners() {
		for _, p := range s.local.List(owner) {
			for _, t := range p.Tasks {
				if !t.Completed && t.EndDate != "" && t.EndDate <= today {
					urgent = append(urgent, urgentTask{task: t, plannerTitle: p.Title})
				}
			}
		}
	}

	if len(urgent) == 0 {
		return "", 0
	}
	first := urgent[0]
	if len(urgent) == 1 {
		return fmt.Sprintf("You have urgent tasks: %s for %s", first.task.Name, first.plannerTitle), 1
	}
	return fmt.Sprintf("You have urgent tasks: %s and %d other tasks", first.task.Name, len(urgent)-1), len(urgent)
}

// Latest returns the most recent persisted reminder, or nil when none
// has been recorded yet.
func (s *Service) Latest() (*entities.ReminderLog, error) {
	var rl entities.ReminderLog
	if err := s.db.Order("id DESC").First(&rl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rl, nil
}

func (s *Service) owners() []string {
	var keys []string
	if err := s.db.Model(&entities.CacheEntry{}).
		Where("key LIKE ?", "planners:%").
		Pluck("key", &keys).Error; err != nil {
		log.Printf("[reminder] list owners: %v", err)
		return nil
	}
	owners := make([]string, 0, len(keys))
	for _, k := range keys {
		owners = append(owners, strings.TrimPrefix(k, "planners:"))
	}
	return owners
}
