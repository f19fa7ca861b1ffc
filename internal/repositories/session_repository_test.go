package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/trip_models"
)

func TestGetOrCreateMintsIDs(t *testing.T) {
	repo := NewSessionRepository()

	id, s := repo.GetOrCreate("")
	require.NotEmpty(t, id)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, trip_models.StageIntro, s.Trip.Stage)

	// Same id returns the same session.
	id2, s2 := repo.GetOrCreate(id)
	assert.Equal(t, id, id2)
	assert.Same(t, s, s2)
}

func TestGetOrCreateUnknownIDStartsFresh(t *testing.T) {
	repo := NewSessionRepository()

	id, s := repo.GetOrCreate("never-seen")
	assert.Equal(t, "never-seen", id)
	assert.Empty(t, s.History)
}

func TestSavePersistsMutations(t *testing.T) {
	repo := NewSessionRepository()

	id, s := repo.GetOrCreate("")
	s.AppendHistory("user", "hello")
	repo.Save(s)

	got, ok := repo.Get(id)
	require.True(t, ok)
	require.Len(t, got.History, 1)
	assert.Equal(t, "hello", got.History[0].Content)
}
