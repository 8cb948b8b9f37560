package contract

import (
	"testing"
	"time"

	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseInput returns the raw input produced by the flag defaults.
func baseInput() *ConfigRawInput {
	return &ConfigRawInput{
		Precision: DefaultPrecision,
		Output:    "text",
		Emoji:     "yes",
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid precision", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: true},
		{name: "invalid output format", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "invalid emoji", mutate: func(in *ConfigRawInput) { in.Emoji = "" }, expectError: true},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "invalid store backend", mutate: func(in *ConfigRawInput) { in.StoreBackend = "oracle" }, expectError: true},
		{
			name:        "mysql backend without connection string",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = string(schema.MySQLBackend) },
			expectError: true,
		},
		{
			name:        "postgresql backend without connection string",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = string(schema.PostgreSQLBackend) },
			expectError: true,
		},
		{
			name: "mysql backend with connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.MySQLBackend)
				in.StoreDBConnect = "user:pass@tcp(localhost:3306)/nutriplan"
			},
		},
		{name: "sqlite backend", mutate: func(in *ConfigRawInput) { in.StoreBackend = "SQLite" }},
		{name: "invalid sex", mutate: func(in *ConfigRawInput) { in.Sex = "robot" }, expectError: true},
		{name: "invalid activity", mutate: func(in *ConfigRawInput) { in.Activity = "couch" }, expectError: true},
		{name: "invalid goal", mutate: func(in *ConfigRawInput) { in.Goal = "bulk" }, expectError: true},
		{name: "invalid dob", mutate: func(in *ConfigRawInput) { in.DOB = "20/05/1996" }, expectError: true},
		{name: "invalid max tier", mutate: func(in *ConfigRawInput) { in.MaxTier = "fine" }, expectError: true},
		{name: "invalid step", mutate: func(in *ConfigRawInput) { in.Step = -0.5 }, expectError: true},
		{
			name: "complete biometric input",
			mutate: func(in *ConfigRawInput) {
				in.Sex = "female"
				in.Activity = "very-active"
				in.Goal = "lose"
				in.DOB = "1996-05-20"
				in.MaxTier = "Risky"
				in.Step = 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, input.Precision, cfg.Precision)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, baseInput()))
	assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
	assert.Equal(t, DefaultMaxTier, cfg.MaxTier)
	assert.Equal(t, DefaultStep, cfg.Step)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.UseEmojis)
	assert.Equal(t, schema.TextOut, cfg.Output)
}

func TestProcessAndValidateBiometrics(t *testing.T) {
	input := baseInput()
	input.ProfileID = "  abc  "
	input.Name = " Ada "
	input.DOB = "1996-05-20"
	input.Sex = "female"
	input.Activity = "light"
	input.Goal = "lose_weight"
	input.Weight = 65
	input.Height = 168
	input.Target = 55
	input.DietType = "vegetarian"
	input.Allergies = "peanuts, shellfish,"
	input.Dislikes = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "abc", cfg.ProfileID)
	assert.Equal(t, "Ada", cfg.Name)
	assert.Equal(t, time.Date(1996, time.May, 20, 0, 0, 0, 0, time.UTC), cfg.DateOfBirth)
	assert.Equal(t, schema.FemaleSex, cfg.Sex)
	assert.Equal(t, schema.LightLevel, cfg.ActivityLevel)
	assert.Equal(t, schema.LoseWeightGoal, cfg.Goal)
	assert.Equal(t, []string{"peanuts", "shellfish"}, cfg.Preferences.Allergies)
	assert.Empty(t, cfg.Preferences.Dislikes)

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	in, err := cfg.OnboardingInput(now)
	require.NoError(t, err)
	assert.Equal(t, 55.0, in.TargetWeight)
	assert.Equal(t, "vegetarian", in.Preferences.DietType)

	req, err := cfg.GoalRequest()
	require.NoError(t, err)
	assert.Equal(t, schema.GoalRequest{CurrentWeight: 65, TargetWeight: 55, Height: 168, Sex: schema.FemaleSex}, req)

	p, err := cfg.BiometricProfile(29)
	require.NoError(t, err)
	assert.Equal(t, 29, p.Age)
}

func TestConfigAccessorsRequireFields(t *testing.T) {
	cfg := &Config{Weight: 65, Height: 168, Sex: schema.FemaleSex}

	_, err := cfg.BiometricProfile(29)
	assert.ErrorIs(t, err, ErrInvalidInput, "activity and goal are missing")

	_, err = cfg.GoalRequest()
	assert.ErrorIs(t, err, ErrInvalidInput, "target is missing")

	_, err = cfg.OnboardingInput(time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput, "name is missing")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Weight: 70, Preferences: schema.Preferences{Allergies: []string{"gluten"}}}
	clone := cfg.Clone()
	clone.Weight = 80
	clone.Preferences.Allergies[0] = "soy"
	assert.Equal(t, 70.0, cfg.Weight)
	assert.Equal(t, "gluten", cfg.Preferences.Allergies[0])
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name      string
		backend   schema.DatabaseBackend
		connStr   string
		expectErr string
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", ""},
		{"none needs nothing", schema.NoneBackend, "", ""},
		{"mysql valid", schema.MySQLBackend, "root:secret@tcp(localhost:3306)/db?parseTime=true", ""},
		{"mysql missing tcp", schema.MySQLBackend, "root:secret@localhost/db", "@tcp("},
		{"mysql missing slash", schema.MySQLBackend, "root:secret@tcp(localhost:3306)", "'/'"},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=postgres", ""},
		{"postgres missing host", schema.PostgreSQLBackend, "port=5432 dbname=postgres", "host="},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", "dbname="},
		{"postgres empty", schema.PostgreSQLBackend, "", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "nutriplan"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "nutriplan", profile.Prefix)
}
