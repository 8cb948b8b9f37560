// Package parquet provides data structures and functions for exporting
// nutriplan profiles to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/nutriplan/schema"
	"github.com/parquet-go/parquet-go"
)

// Profile represents an onboarded profile with its derived metrics.
// This struct maps to the nutriplan_profiles and nutriplan_preferences tables.
type Profile struct {
	ProfileID   string    `parquet:"profile_id,snappy"`
	Name        string    `parquet:"name,snappy"`
	DateOfBirth time.Time `parquet:"date_of_birth,snappy"`
	Sex         string    `parquet:"sex,snappy"`

	// Body measurements in kg and cm
	Weight       float64 `parquet:"weight,snappy"`
	Height       float64 `parquet:"height,snappy"`
	TargetWeight float64 `parquet:"target_weight,snappy"`

	ActivityLevel string `parquet:"activity_level,snappy"`
	Goal          string `parquet:"goal,snappy"`

	// WeeklyWeightChangeGoal is negative for a loss
	WeeklyWeightChangeGoal float64   `parquet:"weekly_weight_change_goal,snappy"`
	EstimatedTargetDate    time.Time `parquet:"estimated_target_date,snappy"`

	BMI            float64 `parquet:"bmi,snappy"`
	BMR            float64 `parquet:"bmr,snappy"`
	TDEE           float64 `parquet:"tdee,snappy"`
	IdealWeight    float64 `parquet:"ideal_weight,snappy"`
	BodyFatPercent float64 `parquet:"body_fat_percent,snappy"`
	DailyCalories  int32   `parquet:"daily_calories,snappy"`
	DailyProtein   int32   `parquet:"daily_protein,snappy"`
	DailyCarbs     int32   `parquet:"daily_carbs,snappy"`
	DailyFat       int32   `parquet:"daily_fat,snappy"`

	Safety              string    `parquet:"safety,snappy"`
	OnboardingCompleted bool      `parquet:"onboarding_completed,snappy"`
	CreatedAt           time.Time `parquet:"created_at,snappy"`
	UpdatedAt           time.Time `parquet:"updated_at,snappy"`

	// Preferences are null when none were recorded; lists are "|" separated
	DietType  *string `parquet:"diet_type,optional,snappy"`
	Allergies *string `parquet:"allergies,optional,snappy"`
	Dislikes  *string `parquet:"dislikes,optional,snappy"`
}

// WeightEntry represents a single weigh-in.
// This struct maps to the nutriplan_weight_history table.
type WeightEntry struct {
	EntryID    string    `parquet:"entry_id,snappy"`
	ProfileID  string    `parquet:"profile_id,snappy"`
	Weight     float64   `parquet:"weight,snappy"`
	Notes      *string   `parquet:"notes,optional,snappy"`
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// writeRows writes a slice of rows to a Parquet file. The schema is derived
// from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// WriteProfilesParquet writes a slice of Profile structs to a Parquet file.
func WriteProfilesParquet(data []Profile, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteWeightHistoryParquet writes a slice of WeightEntry structs to a Parquet file.
func WriteWeightHistoryParquet(data []WeightEntry, outputPath string) error {
	return writeRows(data, outputPath)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ConvertProfileRecords converts stored profiles to Parquet rows.
func ConvertProfileRecords(records []schema.ProfileRecord) []Profile {
	result := make([]Profile, 0, len(records))
	for _, r := range records {
		row := Profile{
			ProfileID:              r.ProfileID,
			Name:                   r.Name,
			DateOfBirth:            r.DateOfBirth,
			Sex:                    string(r.Sex),
			Weight:                 r.Weight,
			Height:                 r.Height,
			TargetWeight:           r.TargetWeight,
			ActivityLevel:          string(r.ActivityLevel),
			Goal:                   string(r.Goal),
			WeeklyWeightChangeGoal: r.WeeklyWeightChangeGoal,
			EstimatedTargetDate:    r.EstimatedTargetDate,
			BMI:                    r.Metrics.BMI,
			BMR:                    r.Metrics.BMR,
			TDEE:                   r.Metrics.TDEE,
			IdealWeight:            r.Metrics.IdealWeight,
			BodyFatPercent:         r.Metrics.BodyFatPercent,
			DailyCalories:          int32(r.Metrics.DailyCalories),
			DailyProtein:           int32(r.Metrics.DailyProtein),
			DailyCarbs:             int32(r.Metrics.DailyCarbs),
			DailyFat:               int32(r.Metrics.DailyFat),
			Safety:                 string(r.Safety),
			OnboardingCompleted:    r.OnboardingCompleted,
			CreatedAt:              r.CreatedAt,
			UpdatedAt:              r.UpdatedAt,
		}
		if r.Preferences != nil {
			row.DietType = optionalString(r.Preferences.DietType)
			row.Allergies = optionalString(strings.Join(r.Preferences.Allergies, "|"))
			row.Dislikes = optionalString(strings.Join(r.Preferences.Dislikes, "|"))
		}
		result = append(result, row)
	}
	return result
}

// ConvertWeightEntries converts stored weigh-ins to Parquet rows.
func ConvertWeightEntries(entries []schema.WeightEntry) []WeightEntry {
	result := make([]WeightEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, WeightEntry{
			EntryID:    e.EntryID,
			ProfileID:  e.ProfileID,
			Weight:     e.Weight,
			Notes:      optionalString(e.Notes),
			RecordedAt: e.RecordedAt,
		})
	}
	return result
}
