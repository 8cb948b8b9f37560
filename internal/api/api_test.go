package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func baseConfig() *contract.Config {
	return &contract.Config{
		Precision:    contract.DefaultPrecision,
		Output:       schema.JSONOut,
		StoreBackend: schema.SQLiteBackend,
		MaxTier:      contract.DefaultMaxTier,
		Step:         contract.DefaultStep,
	}
}

func storeWith(store contract.ProfileStore) *persist.MockStoreManager {
	mgr := &persist.MockStoreManager{}
	mgr.On("GetProfileStore").Return(store)
	return mgr
}

func perform(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	store := &persist.MockProfileStore{}
	store.On("GetStatus").Return(schema.StoreStatus{Backend: "sqlite", Connected: true}, nil)
	router := NewRouter(baseConfig(), storeWith(store))

	w := perform(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "sqlite", body["store"])
	assert.Equal(t, true, body["connected"])
}

func TestHealthWithoutStore(t *testing.T) {
	router := NewRouter(baseConfig(), nil)

	w := perform(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.NotContains(t, body, "connected")
}

func TestComputeMetrics(t *testing.T) {
	router := NewRouter(baseConfig(), nil)

	w := perform(t, router, http.MethodPost, "/api/metrics", map[string]any{
		"weight":        65,
		"height":        168,
		"age":           29,
		"sex":           "female",
		"activityLevel": "light",
		"goal":          "lose_weight",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	metrics := decode[schema.DerivedMetrics](t, w)
	assert.Equal(t, 23.0, metrics.BMI)
	assert.Equal(t, 1394.0, metrics.BMR)
	assert.Equal(t, 1534, metrics.DailyCalories)
}

func TestComputeMetricsErrors(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"malformed body", "{not json"},
		{"unknown sex", map[string]any{"weight": 65, "height": 168, "age": 29, "sex": "robot", "activityLevel": "light", "goal": "maintain"}},
		{"bad date", map[string]any{"weight": 65, "height": 168, "dateOfBirth": "20/05/1996", "sex": "female", "activityLevel": "light", "goal": "maintain"}},
		{"weight out of range", map[string]any{"weight": 12, "height": 168, "age": 29, "sex": "female", "activityLevel": "light", "goal": "maintain"}},
		{"missing goal", map[string]any{"weight": 65, "height": 168, "age": 29, "sex": "female", "activityLevel": "light"}},
	}
	router := NewRouter(baseConfig(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, http.MethodPost, "/api/metrics", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode[map[string]string](t, w)
			assert.Contains(t, body["error"], "invalid input")
		})
	}
}

func TestAnalyzeWeightGoal(t *testing.T) {
	router := NewRouter(baseConfig(), nil)

	w := perform(t, router, http.MethodPost, "/api/weight-goal", map[string]any{
		"currentWeight": 65,
		"targetWeight":  55,
		"height":        168,
		"sex":           "FEMALE",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	analysis := decode[schema.WeightGoalAnalysis](t, w)
	assert.Equal(t, schema.SafeTier, analysis.Safety)
	assert.True(t, analysis.IsRealistic)
	assert.Equal(t, 20, analysis.EstimatedWeeks)
	assert.Equal(t, "Realistic and healthy weight loss goal", analysis.MainMessage)
}

func TestAnalyzeWeightGoalInvalid(t *testing.T) {
	router := NewRouter(baseConfig(), nil)

	w := perform(t, router, http.MethodPost, "/api/weight-goal", map[string]any{
		"currentWeight": 65,
		"targetWeight":  250,
		"height":        168,
		"sex":           "female",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func onboardingBody() map[string]any {
	return map[string]any{
		"name":          "Camille",
		"dateOfBirth":   "1996-05-20",
		"sex":           "female",
		"weight":        65,
		"height":        168,
		"activityLevel": "light",
		"goal":          "lose_weight",
		"targetWeight":  55,
		"dietType":      "vegetarian",
		"allergies":     []string{"peanuts"},
	}
}

func TestOnboard(t *testing.T) {
	store := &persist.MockProfileStore{}
	store.On("SaveOnboarding", mock.MatchedBy(func(plan schema.OnboardingPlan) bool {
		return plan.Input.Name == "Camille" &&
			plan.Input.Preferences.DietType == "vegetarian" &&
			plan.WeeklyWeightChangeGoal == -0.5
	})).Return("profile-1", nil)
	router := NewRouter(baseConfig(), storeWith(store))

	w := perform(t, router, http.MethodPost, "/api/onboarding", onboardingBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[schema.OnboardingResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "profile-1", resp.User.ID)
	assert.Equal(t, "Camille", resp.User.Name)
	assert.True(t, resp.User.OnboardingCompleted)
	assert.Equal(t, 23.0, resp.User.Metrics.BMI)
	store.AssertExpectations(t)
}

func TestOnboardErrors(t *testing.T) {
	t.Run("store disabled", func(t *testing.T) {
		router := NewRouter(baseConfig(), storeWith(nil))
		w := perform(t, router, http.MethodPost, "/api/onboarding", onboardingBody())
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("save failure", func(t *testing.T) {
		store := &persist.MockProfileStore{}
		store.On("SaveOnboarding", mock.Anything).Return("", assert.AnError)
		router := NewRouter(baseConfig(), storeWith(store))
		w := perform(t, router, http.MethodPost, "/api/onboarding", onboardingBody())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "failed to save onboarding")
	})

	t.Run("short name", func(t *testing.T) {
		store := &persist.MockProfileStore{}
		router := NewRouter(baseConfig(), storeWith(store))
		body := onboardingBody()
		body["name"] = "C"
		w := perform(t, router, http.MethodPost, "/api/onboarding", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "SaveOnboarding", mock.Anything)
	})
}

func TestGetProfile(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	store := &persist.MockProfileStore{}
	store.On("GetProfile", "profile-1").Return(schema.ProfileRecord{ProfileID: "profile-1", Name: "Camille", CreatedAt: created}, nil)
	store.On("GetWeightHistory", "profile-1").Return([]schema.WeightEntry{
		{EntryID: "e1", ProfileID: "profile-1", Weight: 65, Notes: schema.InitialWeightNote, RecordedAt: created},
	}, nil)
	store.On("GetProfile", "missing").Return(schema.ProfileRecord{}, contract.ErrProfileNotFound)
	router := NewRouter(baseConfig(), storeWith(store))

	w := perform(t, router, http.MethodGet, "/api/profile/profile-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	details := decode[schema.ProfileDetails](t, w)
	assert.Equal(t, "Camille", details.Profile.Name)
	require.Len(t, details.History, 1)
	assert.Equal(t, 65.0, details.History[0].Weight)

	w = perform(t, router, http.MethodGet, "/api/profile/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordWeight(t *testing.T) {
	store := &persist.MockProfileStore{}
	store.On("RecordWeight", "profile-1", 64.2, "week two", mock.AnythingOfType("time.Time")).
		Return(schema.WeightEntry{EntryID: "e2", ProfileID: "profile-1", Weight: 64.2, Notes: "week two"}, nil)
	router := NewRouter(baseConfig(), storeWith(store))

	w := perform(t, router, http.MethodPost, "/api/profile/profile-1/weight", map[string]any{"weight": 64.2, "notes": "week two"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entry := decode[schema.WeightEntry](t, w)
	assert.Equal(t, "e2", entry.EntryID)

	w = perform(t, router, http.MethodPost, "/api/profile/profile-1/weight", map[string]any{"weight": 900})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(contract.ErrInvalidInput))
	assert.Equal(t, http.StatusNotFound, statusFor(contract.ErrProfileNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(contract.ErrStoreDisabled))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
