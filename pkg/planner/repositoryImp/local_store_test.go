package repositoryImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplan/entities"
	"studyplan/pkg/planner/repository"
)

type mapKV struct {
	m       map[string]string
	readErr error
}

func newMapKV() *mapKV { return &mapKV{m: map[string]string{}} }

func (kv *mapKV) Read(key string) (string, bool, error) {
	if kv.readErr != nil {
		return "", false, kv.readErr
	}
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *mapKV) Write(key, value string) error {
	kv.m[key] = value
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
}

func newTestStore() (*mapKV, repository.LocalStore) {
	kv := newMapKV()
	return kv, NewLocalStoreWithClock(kv, fixedClock())
}

func TestListMissingAndCorrupt(t *testing.T) {
	kv, store := newTestStore()

	assert.Empty(t, store.List("guest"))

	kv.m["planners:guest"] = "{definitely not json"
	assert.Empty(t, store.List("guest"))

	kv.readErr = errors.New("disk on fire")
	assert.Empty(t, store.List("guest"))
}

func TestSaveAssignsIdentityAndStamps(t *testing.T) {
	_, store := newTestStore()

	saved, err := store.Save("guest", entities.Planner{Title: "Essay"})
	require.NoError(t, err)

	assert.True(t, len(saved.ID) > len("planner-"))
	assert.Equal(t, "planner-", saved.ID[:len("planner-")])
	assert.Equal(t, "guest", saved.UserID)
	assert.Equal(t, "2026-03-01T09:00:00Z", saved.CreatedAt)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.NotNil(t, saved.Tasks)

	got := store.List("guest")
	require.Len(t, got, 1)
	assert.Equal(t, saved, got[0])
}

func TestSaveUpsertsById(t *testing.T) {
	_, store := newTestStore()

	first, err := store.Save("guest", entities.Planner{ID: "p1", Title: "v1"})
	require.NoError(t, err)

	second, err := store.Save("guest", entities.Planner{ID: "p1", Title: "v2", CreatedAt: first.CreatedAt})
	require.NoError(t, err)
	assert.Equal(t, "v2", second.Title)

	got := store.List("guest")
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].Title)
}

func TestUpdateMissingPlanner(t *testing.T) {
	_, store := newTestStore()

	_, err := store.Update("guest", entities.Planner{ID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	_, store := newTestStore()

	saved, err := store.Save("guest", entities.Planner{ID: "p1", Title: "v1"})
	require.NoError(t, err)

	updated, err := store.Update("guest", entities.Planner{ID: "p1", Title: "v2"})
	require.NoError(t, err)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "v2", updated.Title)
}

func TestDelete(t *testing.T) {
	_, store := newTestStore()

	_, err := store.Save("guest", entities.Planner{ID: "p1"})
	require.NoError(t, err)
	_, err = store.Save("guest", entities.Planner{ID: "p2"})
	require.NoError(t, err)

	require.NoError(t, store.Delete("guest", "p1"))
	got := store.List("guest")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	assert.ErrorIs(t, store.Delete("guest", "p1"), repository.ErrNotFound)
}

func TestToggleTaskRecomputesProgress(t *testing.T) {
	_, store := newTestStore()

	_, err := store.Save("guest", entities.Planner{
		ID: "p1",
		Tasks: []entities.Task{
			{ID: "t1", Name: "a"},
			{ID: "t2", Name: "b"},
			{ID: "t3", Name: "c"},
		},
	})
	require.NoError(t, err)

	got, err := store.ToggleTask("guest", "p1", "t1", true)
	require.NoError(t, err)
	assert.Equal(t, 33, got.Progress)

	got, err = store.ToggleTask("guest", "p1", "t2", true)
	require.NoError(t, err)
	assert.Equal(t, 67, got.Progress)

	// stored copy agrees with the returned one
	stored, err := store.Get("guest", "p1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	_, err = store.ToggleTask("guest", "p1", "missing-task", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.ToggleTask("guest", "missing-planner", "t1", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOwnersAreIsolated(t *testing.T) {
	_, store := newTestStore()

	_, err := store.Save("alice", entities.Planner{ID: "p1"})
	require.NoError(t, err)

	assert.Empty(t, store.List("bob"))
	_, err = store.Get("bob", "p1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
