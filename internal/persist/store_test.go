package persist

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var onboardedAt = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func samplePlan(name string, created time.Time, prefs schema.Preferences) schema.OnboardingPlan {
	return schema.OnboardingPlan{
		Input: schema.OnboardingInput{
			Name:          name,
			DateOfBirth:   time.Date(1996, 5, 20, 0, 0, 0, 0, time.UTC),
			Sex:           schema.FemaleSex,
			Weight:        65,
			Height:        168,
			ActivityLevel: schema.LightLevel,
			Goal:          schema.LoseWeightGoal,
			TargetWeight:  55,
			Preferences:   prefs,
		},
		Age: 29,
		Metrics: schema.DerivedMetrics{
			BMI: 23.0, BMR: 1394, TDEE: 1917, IdealWeight: 60.8, BodyFatPercent: 28.9,
			DailyCalories: 1534, DailyProtein: 134, DailyCarbs: 115, DailyFat: 60,
		},
		Analysis: schema.WeightGoalAnalysis{
			Safety:                schema.SafeTier,
			IsRealistic:           true,
			RecommendedWeeklyRate: 0.5,
			EstimatedWeeks:        20,
		},
		WeeklyWeightChangeGoal: -0.5,
		EstimatedTargetDate:    created.AddDate(0, 0, 140),
		OnboardingCompleted:    true,
		CreatedAt:              created,
	}
}

func newMemoryStore(t *testing.T) *ProfileStoreImpl {
	t.Helper()
	store, err := NewProfileStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestProfileStore_NoneBackend(t *testing.T) {
	store, err := NewProfileStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	_, err = store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{}))
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)

	_, err = store.GetProfile("any")
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)

	_, err = store.ListProfiles()
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)

	_, err = store.RecordWeight("any", 64, "", onboardedAt)
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)

	_, err = store.GetWeightHistory("any")
	assert.ErrorIs(t, err, contract.ErrStoreDisabled)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestProfileStore_UnsupportedBackend(t *testing.T) {
	_, err := NewProfileStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestProfileStore_SaveAndGet(t *testing.T) {
	store := newMemoryStore(t)
	plan := samplePlan("Camille", onboardedAt, schema.Preferences{
		DietType:  "vegetarian",
		Allergies: []string{"peanuts", "shellfish"},
	})

	profileID, err := store.SaveOnboarding(plan)
	require.NoError(t, err)
	assert.Len(t, profileID, 36, "profile IDs are UUIDs")

	record, err := store.GetProfile(profileID)
	require.NoError(t, err)
	assert.Equal(t, profileID, record.ProfileID)
	assert.Equal(t, "Camille", record.Name)
	assert.True(t, record.DateOfBirth.Equal(plan.Input.DateOfBirth))
	assert.Equal(t, schema.FemaleSex, record.Sex)
	assert.Equal(t, schema.LightLevel, record.ActivityLevel)
	assert.Equal(t, schema.LoseWeightGoal, record.Goal)
	assert.Equal(t, 55.0, record.TargetWeight)
	assert.Equal(t, -0.5, record.WeeklyWeightChangeGoal)
	assert.True(t, record.EstimatedTargetDate.Equal(plan.EstimatedTargetDate))
	assert.Equal(t, plan.Metrics, record.Metrics)
	assert.Equal(t, schema.SafeTier, record.Safety)
	assert.True(t, record.OnboardingCompleted)
	assert.True(t, record.CreatedAt.Equal(onboardedAt))
	assert.True(t, record.UpdatedAt.Equal(onboardedAt))

	require.NotNil(t, record.Preferences)
	assert.Equal(t, "vegetarian", record.Preferences.DietType)
	assert.Equal(t, []string{"peanuts", "shellfish"}, record.Preferences.Allergies)
	assert.Nil(t, record.Preferences.Dislikes)

	history, err := store.GetWeightHistory(profileID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 65.0, history[0].Weight)
	assert.Equal(t, schema.InitialWeightNote, history[0].Notes)
	assert.True(t, history[0].RecordedAt.Equal(onboardedAt))
}

func TestProfileStore_PreferencesOnlyWithDietType(t *testing.T) {
	store := newMemoryStore(t)

	for _, diet := range []string{"", schema.NoDietType} {
		profileID, err := store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{
			DietType:  diet,
			Allergies: []string{"gluten"},
		}))
		require.NoError(t, err)

		record, err := store.GetProfile(profileID)
		require.NoError(t, err)
		assert.Nil(t, record.Preferences, "diet type %q", diet)
	}

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TableSizes[preferencesTable])
}

func TestProfileStore_ListProfilesNewestFirst(t *testing.T) {
	store := newMemoryStore(t)

	profiles, err := store.ListProfiles()
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)

	oldID, err := store.SaveOnboarding(samplePlan("Ada", onboardedAt, schema.Preferences{}))
	require.NoError(t, err)
	newID, err := store.SaveOnboarding(samplePlan("Grace", onboardedAt.Add(90*time.Minute), schema.Preferences{DietType: "vegan"}))
	require.NoError(t, err)

	profiles, err = store.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, newID, profiles[0].ProfileID)
	assert.Equal(t, oldID, profiles[1].ProfileID)
	require.NotNil(t, profiles[0].Preferences)
	assert.Equal(t, "vegan", profiles[0].Preferences.DietType)
	assert.Nil(t, profiles[1].Preferences)
}

func TestProfileStore_RecordWeight(t *testing.T) {
	store := newMemoryStore(t)
	profileID, err := store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{}))
	require.NoError(t, err)

	week := onboardedAt.AddDate(0, 0, 7)
	// Recorded out of order to check the history is sorted by time
	_, err = store.RecordWeight(profileID, 63.8, "", week.AddDate(0, 0, 7))
	require.NoError(t, err)
	entry, err := store.RecordWeight(profileID, 64.4, "after holidays", week)
	require.NoError(t, err)
	assert.Equal(t, profileID, entry.ProfileID)
	assert.Equal(t, 64.4, entry.Weight)
	assert.Equal(t, "after holidays", entry.Notes)
	assert.NotEmpty(t, entry.EntryID)

	history, err := store.GetWeightHistory(profileID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []float64{65, 64.4, 63.8}, []float64{history[0].Weight, history[1].Weight, history[2].Weight})
	assert.Equal(t, entry.EntryID, history[1].EntryID)
}

func TestProfileStore_UnknownProfile(t *testing.T) {
	store := newMemoryStore(t)

	_, err := store.GetProfile("missing")
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)

	_, err = store.RecordWeight("missing", 70, "", onboardedAt)
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)

	_, err = store.GetWeightHistory("missing")
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)
}

func TestProfileStore_GetStatus(t *testing.T) {
	store := newMemoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalProfiles)
	assert.Len(t, status.TableSizes, 3)

	firstID, err := store.SaveOnboarding(samplePlan("Ada", onboardedAt, schema.Preferences{DietType: "keto"}))
	require.NoError(t, err)
	lastID, err := store.SaveOnboarding(samplePlan("Grace", onboardedAt.Add(time.Hour), schema.Preferences{}))
	require.NoError(t, err)
	_, err = store.RecordWeight(firstID, 64, "", onboardedAt.Add(2*time.Hour))
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalProfiles)
	assert.Equal(t, 3, status.TotalWeighIns)
	assert.Equal(t, lastID, status.LastProfileID)
	assert.True(t, status.LastProfileTime.Equal(onboardedAt.Add(time.Hour)))
	assert.True(t, status.OldestProfileTime.Equal(onboardedAt))
	assert.Equal(t, int64(2), status.TableSizes[profilesTable])
	assert.Equal(t, int64(1), status.TableSizes[preferencesTable])
	assert.Equal(t, int64(3), status.TableSizes[weightHistoryTable])
}

func TestProfileStore_ReopenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "profiles.db")

	store, err := NewProfileStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	profileID, err := store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{}))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Tables already exist on the second open
	store, err = NewProfileStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	record, err := store.GetProfile(profileID)
	require.NoError(t, err)
	assert.Equal(t, "Camille", record.Name)
}
