package repositoryImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyplan/entities"
)

func newTestKVDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.CacheEntry{}))
	return db
}

func TestKVReadMissing(t *testing.T) {
	kv := NewKV(newTestKVDB(t))

	v, ok, err := kv.Read("planners:guest")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestKVWriteReadOverwrite(t *testing.T) {
	kv := NewKV(newTestKVDB(t))

	require.NoError(t, kv.Write("planners:guest", `[{"id":"p1"}]`))
	v, ok, err := kv.Read("planners:guest")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"p1"}]`, v)

	// same key upserts
	require.NoError(t, kv.Write("planners:guest", `[]`))
	v, ok, err = kv.Read("planners:guest")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestKVKeysAreIndependent(t *testing.T) {
	kv := NewKV(newTestKVDB(t))

	require.NoError(t, kv.Write("planners:alice", "a"))
	require.NoError(t, kv.Write("planners:bob", "b"))

	v, _, err := kv.Read("planners:alice")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, _, err = kv.Read("planners:bob")
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}
