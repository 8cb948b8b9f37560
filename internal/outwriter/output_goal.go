package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/olekukonko/tablewriter/tw"
)

var goalCSVHeader = []string{
	"safety", "is_realistic", "direction", "weight_change", "current_bmi",
	"target_bmi", "weekly_rate", "weeks", "months", "ideal_weight",
	"min_safe_weight", "max_safe_weight", "main_message", "warnings",
	"recommendations",
}

// goalCSVRecord flattens an analysis into one CSV record. Message lists
// are joined with "|".
func goalCSVRecord(a schema.WeightGoalAnalysis, fmtFloat func(float64) string) []string {
	return []string{
		string(a.Safety),
		strconv.FormatBool(a.IsRealistic),
		string(a.Direction),
		fmtFloat(a.WeightChange),
		fmtFloat(a.CurrentBMI),
		fmtFloat(a.TargetBMI),
		strconv.FormatFloat(a.RecommendedWeeklyRate, 'f', -1, 64),
		strconv.Itoa(a.EstimatedWeeks),
		fmtFloat(a.EstimatedMonths),
		fmtFloat(a.IdealWeight),
		fmtFloat(a.MinSafeWeight),
		fmtFloat(a.MaxSafeWeight),
		a.MainMessage,
		strings.Join(a.Warnings, "|"),
		strings.Join(a.Recommendations, "|"),
	}
}

// WriteGoalAnalysis outputs a weight goal analysis in the configured format.
func WriteGoalAnalysis(a schema.WeightGoalAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(cfg, a,
		func(w io.Writer) error {
			return writeCSVRows(w, goalCSVHeader, [][]string{goalCSVRecord(a, fmtFloat)})
		},
		func(w io.Writer) error {
			if err := writeGoalText(w, a, cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
			return err
		})
}

// WriteCheck outputs the result of gating a goal against a maximum tier.
func WriteCheck(result schema.GoalCheckResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(cfg, result,
		func(w io.Writer) error {
			header := append([]string{"passed", "max_tier"}, goalCSVHeader...)
			record := append([]string{strconv.FormatBool(result.Passed), string(result.MaxTier)}, goalCSVRecord(result.Analysis, fmtFloat)...)
			return writeCSVRows(w, header, [][]string{record})
		},
		func(w io.Writer) error {
			if err := writeGoalText(w, result.Analysis, cfg); err != nil {
				return err
			}
			if err := writeCheckVerdict(w, result, cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Check completed in %v\n", duration)
			return err
		})
}

func writeCheckVerdict(w io.Writer, result schema.GoalCheckResult, cfg *contract.Config) error {
	verdict := "FAILED"
	if result.Passed {
		verdict = "PASSED"
	}
	if cfg.UseEmojis {
		if result.Passed {
			verdict = "✅ " + verdict
		} else {
			verdict = "❌ " + verdict
		}
	}
	_, err := fmt.Fprintf(w, "%s: tier %s, maximum allowed %s\n", verdict, result.Analysis.Safety, result.MaxTier)
	return err
}

// writeGoalText writes the summary table followed by the messages of an analysis.
func writeGoalText(w io.Writer, a schema.WeightGoalAnalysis, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := [][]string{
		{"Safety", tierLabel(cfg, a.Safety)},
		{"Realistic", yesNo(a.IsRealistic)},
		{"Direction", string(a.Direction)},
		{"Weight change", fmtFloat(a.WeightChange) + " kg"},
		{"Current BMI", fmtFloat(a.CurrentBMI)},
		{"Target BMI", fmtFloat(a.TargetBMI)},
		{"Weekly rate", strconv.FormatFloat(a.RecommendedWeeklyRate, 'f', -1, 64) + " kg/week"},
		{"Estimated duration", fmt.Sprintf(intFmt+" weeks (%s months)", a.EstimatedWeeks, fmtFloat(a.EstimatedMonths))},
		{"Ideal weight", fmtFloat(a.IdealWeight) + " kg"},
		{"Safe range", fmt.Sprintf("%s - %s kg", fmtFloat(a.MinSafeWeight), fmtFloat(a.MaxSafeWeight))},
	}
	if err := writeTable(w, []string{"Field", "Value"}, rows, tw.AlignLeft); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", a.MainMessage); err != nil {
		return err
	}
	sections := []struct {
		title string
		lines []string
	}{
		{"Details", a.DetailedMessages},
		{"Warnings", a.Warnings},
		{"Recommendations", a.Recommendations},
	}
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n", s.title); err != nil {
			return err
		}
		for _, line := range s.lines {
			if _, err := fmt.Fprintf(w, "  - %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
