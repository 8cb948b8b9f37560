package api

import (
	"github.com/huangsam/nutriplan/internal/contract"
)

// Request bodies use the camelCase keys of the web client.

type metricsRequest struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

type weightGoalRequest struct {
	CurrentWeight float64 `json:"currentWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	Height        float64 `json:"height"`
	Sex           string  `json:"sex"`
}

type onboardingRequest struct {
	Name          string   `json:"name"`
	DateOfBirth   string   `json:"dateOfBirth"`
	Sex           string   `json:"sex"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	ActivityLevel string   `json:"activityLevel"`
	Goal          string   `json:"goal"`
	TargetWeight  float64  `json:"targetWeight"`
	DietType      string   `json:"dietType"`
	Allergies     []string `json:"allergies"`
	Dislikes      []string `json:"dislikes"`
}

type weighInRequest struct {
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

// applyEnums parses the enumerations a body carries. Empty values are left
// for the core getters to reject.
func applyEnums(cfg *contract.Config, sex, activity, goal string) error {
	if sex != "" {
		s, err := contract.ParseSex(sex)
		if err != nil {
			return err
		}
		cfg.Sex = s
	}
	if activity != "" {
		level, err := contract.ParseActivityLevel(activity)
		if err != nil {
			return err
		}
		cfg.ActivityLevel = level
	}
	if goal != "" {
		g, err := contract.ParseGoal(goal)
		if err != nil {
			return err
		}
		cfg.Goal = g
	}
	return nil
}

func applyDateOfBirth(cfg *contract.Config, dob string) error {
	if dob == "" {
		return nil
	}
	parsed, err := contract.ParseDateOfBirth(dob)
	if err != nil {
		return err
	}
	cfg.DateOfBirth = parsed
	return nil
}

func (r metricsRequest) apply(cfg *contract.Config) error {
	cfg.Weight, cfg.Height, cfg.Age = r.Weight, r.Height, r.Age
	if err := applyDateOfBirth(cfg, r.DateOfBirth); err != nil {
		return err
	}
	return applyEnums(cfg, r.Sex, r.ActivityLevel, r.Goal)
}

func (r weightGoalRequest) apply(cfg *contract.Config) error {
	cfg.Weight, cfg.TargetWeight, cfg.Height = r.CurrentWeight, r.TargetWeight, r.Height
	return applyEnums(cfg, r.Sex, "", "")
}

func (r onboardingRequest) apply(cfg *contract.Config) error {
	cfg.Name = r.Name
	cfg.Weight, cfg.Height, cfg.TargetWeight = r.Weight, r.Height, r.TargetWeight
	cfg.Preferences.DietType = r.DietType
	cfg.Preferences.Allergies = r.Allergies
	cfg.Preferences.Dislikes = r.Dislikes
	if err := applyDateOfBirth(cfg, r.DateOfBirth); err != nil {
		return err
	}
	return applyEnums(cfg, r.Sex, r.ActivityLevel, r.Goal)
}
