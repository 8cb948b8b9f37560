package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteStoreExport_RequiresOutputFile(t *testing.T) {
	err := ExecuteStoreExport("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestExecuteStoreExport_Uninitialized(t *testing.T) {
	resetGlobals(t)
	err := ExecuteStoreExport(filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)
}

func TestExportStore_NoneBackend(t *testing.T) {
	store, err := NewProfileStore(schema.NoneBackend, "")
	require.NoError(t, err)
	err = ExportStore(store, filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)
}

func TestExportStore_Empty(t *testing.T) {
	store := newMemoryStore(t)
	err := ExportStore(store, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no profile data found")
}

func TestExportStore_WritesFiles(t *testing.T) {
	store := newMemoryStore(t)
	profileID, err := store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{DietType: "vegan"}))
	require.NoError(t, err)
	_, err = store.RecordWeight(profileID, 64.5, "", onboardedAt.AddDate(0, 0, 7))
	require.NoError(t, err)

	prefix := filepath.Join(t.TempDir(), "nutriplan")
	require.NoError(t, ExportStore(store, prefix))

	for _, suffix := range []string{".profiles.parquet", ".weight_history.parquet"} {
		info, err := os.Stat(prefix + suffix)
		require.NoError(t, err, "missing %s", suffix)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportStore_StatusError(t *testing.T) {
	store := &MockProfileStore{}
	store.On("GetStatus").Return(schema.StoreStatus{}, assert.AnError)

	err := ExportStore(store, filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, assert.AnError)
	store.AssertExpectations(t)
}
