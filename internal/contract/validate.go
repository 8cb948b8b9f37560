package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/huangsam/nutriplan/schema"
)

// ErrInvalidInput marks every boundary validation failure. HTTP handlers map
// it to 400 and MCP handlers to a tool error.
var ErrInvalidInput = errors.New("invalid input")

// Accepted ranges for biometric inputs.
const (
	MinWeight       = 30.0  // kg
	MaxWeight       = 300.0 // kg
	MinHeight       = 120.0 // cm
	MaxHeight       = 250.0 // cm
	MinTargetWeight = 40.0  // kg
	MaxTargetWeight = 200.0 // kg
	MinAge          = 13
	MaxAge          = 120
	MinNameLength   = 2
	MaxSweepStep    = 10.0 // kg
)

// DateLayout is the format of a date of birth.
const DateLayout = "2006-01-02"

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ParseSex parses a sex case-insensitively.
func ParseSex(s string) (schema.Sex, error) {
	sex := schema.Sex(schema.NormalizeEnum(s))
	if _, ok := schema.ValidSexes[sex]; !ok {
		return "", invalidf("invalid sex '%s'. must be male, female, other", s)
	}
	return sex, nil
}

// ParseActivityLevel parses an activity level, accepting "very-active" and "very active".
func ParseActivityLevel(s string) (schema.ActivityLevel, error) {
	level := schema.ActivityLevel(schema.NormalizeEnum(s))
	if _, ok := schema.ValidActivityLevels[level]; !ok {
		return "", invalidf("invalid activity level '%s'. must be sedentary, light, moderate, active, very_active", s)
	}
	return level, nil
}

// ParseGoal parses a goal. The short forms "lose" and "gain" are accepted too.
func ParseGoal(s string) (schema.Goal, error) {
	normalized := schema.NormalizeEnum(s)
	switch normalized {
	case "LOSE":
		normalized = string(schema.LoseWeightGoal)
	case "GAIN":
		normalized = string(schema.GainMuscleGoal)
	}
	goal := schema.Goal(normalized)
	if _, ok := schema.ValidGoals[goal]; !ok {
		return "", invalidf("invalid goal '%s'. must be lose_weight, maintain, gain_muscle", s)
	}
	return goal, nil
}

// ParseSafetyTier parses a safety tier.
func ParseSafetyTier(s string) (schema.SafetyTier, error) {
	tier := schema.SafetyTier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidSafetyTiers[tier]; !ok {
		return "", invalidf("invalid safety tier '%s'. must be safe, moderate, risky, dangerous", s)
	}
	return tier, nil
}

// ParseDateOfBirth parses a YYYY-MM-DD date, or an RFC 3339 timestamp as sent
// by JavaScript clients.
func ParseDateOfBirth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if dob, err := time.Parse(DateLayout, s); err == nil {
		return dob, nil
	}
	dob, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidf("invalid date of birth '%s'. expected YYYY-MM-DD", s)
	}
	return dob, nil
}

// ParseList splits a comma-separated list, dropping empty items.
func ParseList(s string) []string {
	items := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func validateRange(name string, v, lo, hi float64, unit string) error {
	if !(v >= lo && v <= hi) {
		return invalidf("%s must be between %g and %g %s (received %g)", name, lo, hi, unit, v)
	}
	return nil
}

// ValidateWeight checks a current weight in kg.
func ValidateWeight(w float64) error {
	return validateRange("weight", w, MinWeight, MaxWeight, "kg")
}

// ValidateHeight checks a height in cm.
func ValidateHeight(h float64) error {
	return validateRange("height", h, MinHeight, MaxHeight, "cm")
}

// ValidateTargetWeight checks a target weight in kg.
func ValidateTargetWeight(w float64) error {
	return validateRange("target weight", w, MinTargetWeight, MaxTargetWeight, "kg")
}

// ValidateAge checks an age in whole years.
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return invalidf("age must be between %d and %d (received %d)", MinAge, MaxAge, age)
	}
	return nil
}

// ValidateDateOfBirth checks the age implied by a date of birth. Only the
// calendar years are compared, so someone born in December counts a year
// older all year long.
func ValidateDateOfBirth(dob, now time.Time) error {
	if dob.IsZero() {
		return invalidf("date of birth is required")
	}
	years := now.Year() - dob.Year()
	if years < MinAge || years > MaxAge {
		return invalidf("you must be between %d and %d years old (born %s)", MinAge, MaxAge, dob.Format(DateLayout))
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return invalidf("name must contain at least %d characters", MinNameLength)
	}
	return nil
}

// ValidateStep checks the increment of a target sweep.
func ValidateStep(step float64) error {
	if !(step > 0 && step <= MaxSweepStep) {
		return invalidf("step must be greater than 0 and at most %g kg (received %g)", MaxSweepStep, step)
	}
	return nil
}

// ValidateSex checks that a sex is one of the known values.
func ValidateSex(sex schema.Sex) error {
	if _, ok := schema.ValidSexes[sex]; !ok {
		return invalidf("invalid sex '%s'", sex)
	}
	return nil
}

func validateEnums(sex schema.Sex, level schema.ActivityLevel, goal schema.Goal) error {
	if err := ValidateSex(sex); err != nil {
		return err
	}
	if _, ok := schema.ValidActivityLevels[level]; !ok {
		return invalidf("invalid activity level '%s'", level)
	}
	if _, ok := schema.ValidGoals[goal]; !ok {
		return invalidf("invalid goal '%s'", goal)
	}
	return nil
}

// ValidateBiometricProfile checks the inputs of a metrics calculation.
func ValidateBiometricProfile(p schema.BiometricProfile) error {
	if err := ValidateWeight(p.Weight); err != nil {
		return err
	}
	if err := ValidateHeight(p.Height); err != nil {
		return err
	}
	if err := ValidateAge(p.Age); err != nil {
		return err
	}
	return validateEnums(p.Sex, p.ActivityLevel, p.Goal)
}

// ValidateGoalRequest checks the inputs of a weight goal analysis.
func ValidateGoalRequest(r schema.GoalRequest) error {
	if err := ValidateWeight(r.CurrentWeight); err != nil {
		return err
	}
	if err := ValidateTargetWeight(r.TargetWeight); err != nil {
		return err
	}
	if err := ValidateHeight(r.Height); err != nil {
		return err
	}
	return ValidateSex(r.Sex)
}

// ValidateOnboardingInput checks a complete onboarding submission.
func ValidateOnboardingInput(in schema.OnboardingInput, now time.Time) error {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	if err := ValidateDateOfBirth(in.DateOfBirth, now); err != nil {
		return err
	}
	if err := ValidateWeight(in.Weight); err != nil {
		return err
	}
	if err := ValidateHeight(in.Height); err != nil {
		return err
	}
	if err := ValidateTargetWeight(in.TargetWeight); err != nil {
		return err
	}
	return validateEnums(in.Sex, in.ActivityLevel, in.Goal)
}
