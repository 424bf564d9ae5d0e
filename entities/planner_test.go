package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskProgress(t *testing.T) {
	assert.Equal(t, 0, TaskProgress(nil))
	assert.Equal(t, 0, TaskProgress([]Task{}))

	tasks := []Task{{}, {}, {}}
	assert.Equal(t, 0, TaskProgress(tasks))

	tasks[0].Completed = true
	assert.Equal(t, 33, TaskProgress(tasks))
	tasks[1].Completed = true
	assert.Equal(t, 67, TaskProgress(tasks))
	tasks[2].Completed = true
	assert.Equal(t, 100, TaskProgress(tasks))
}

func TestSanitizeDefaults(t *testing.T) {
	p := Planner{}
	p.Sanitize()

	assert.NotNil(t, p.Tasks)
	assert.Equal(t, "essay", p.AssignmentType)
	assert.Equal(t, GuestUserID, p.UserID)
	assert.Equal(t, 0, p.Progress)
}

func TestSanitizeNamesUnnamedTasks(t *testing.T) {
	p := Planner{
		AssignmentType: "coding",
		UserID:         "alice",
		Tasks: []Task{
			{Name: "Set up"},
			{},
			{Completed: true},
		},
	}
	p.Sanitize()

	assert.Equal(t, "Set up", p.Tasks[0].Name)
	assert.Equal(t, "Task 2", p.Tasks[1].Name)
	assert.Equal(t, "Task 3", p.Tasks[2].Name)
	assert.Equal(t, "coding", p.AssignmentType)
	assert.Equal(t, "alice", p.UserID)
	assert.Equal(t, 33, p.Progress)
}
