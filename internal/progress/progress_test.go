package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrape_progress_janitor.json")

	rec := Record{
		RunID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		Niche:         "janitor",
		TermIndex:     3,
		LocationIndex: 17,
		Status:        StatusInProgress,
	}
	require.NoError(t, Save(path, rec))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, rec.RunID, loaded.RunID)
	assert.Equal(t, "janitor", loaded.Niche)
	assert.Equal(t, 3, loaded.TermIndex)
	assert.Equal(t, 17, loaded.LocationIndex)
	assert.Equal(t, StatusInProgress, loaded.Status)
	assert.False(t, loaded.Timestamp.IsZero())
}

func TestLoadMissingFile(t *testing.T) {
	rec, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	rec, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	require.NoError(t, Save(path, Record{Niche: "janitor", TermIndex: 0, Status: StatusInProgress}))
	require.NoError(t, Save(path, Record{Niche: "janitor", TermIndex: 5, Status: StatusCompleted}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.TermIndex)
	assert.Equal(t, StatusCompleted, loaded.Status)

	// No stray temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
