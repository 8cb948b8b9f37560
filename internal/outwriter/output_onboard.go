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

// onboardingOutput is the JSON document of an onboarding run.
type onboardingOutput struct {
	ProfileID string `json:"profile_id,omitempty"`
	Saved     bool   `json:"saved"`
	schema.OnboardingPlan
}

// WriteOnboarding outputs an onboarding plan. An empty profileID means the
// plan was not stored.
func WriteOnboarding(plan schema.OnboardingPlan, profileID string, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	return dispatch(cfg, onboardingOutput{ProfileID: profileID, Saved: profileID != "", OnboardingPlan: plan},
		func(w io.Writer) error {
			rows := onboardingRows(plan, profileID, fmtFloat, intFmt, func(t schema.SafetyTier) string { return string(t) })
			records := make([][]string, 0, len(rows))
			for _, r := range rows {
				records = append(records, []string{strings.ToLower(strings.ReplaceAll(r[0], " ", "_")), r[1]})
			}
			return writeCSVRows(w, []string{"field", "value"}, records)
		},
		func(w io.Writer) error {
			rows := onboardingRows(plan, profileID, fmtFloat, intFmt, func(t schema.SafetyTier) string { return tierLabel(cfg, t) })
			if err := writeTable(w, []string{"Field", "Value"}, rows, tw.AlignLeft); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", plan.Analysis.MainMessage); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Onboarding completed in %v. Store backend: %s\n", duration, cfg.StoreBackend)
			return err
		})
}

func onboardingRows(plan schema.OnboardingPlan, profileID string, fmtFloat func(float64) string, intFmt string, label func(schema.SafetyTier) string) [][]string {
	id := profileID
	if id == "" {
		id = "(not saved)"
	}
	rows := [][]string{
		{"Profile ID", id},
		{"Name", plan.Input.Name},
		{"Age", fmt.Sprintf(intFmt, plan.Age)},
		{"Sex", string(plan.Input.Sex)},
		{"Activity", string(plan.Input.ActivityLevel)},
		{"Goal", string(plan.Input.Goal)},
		{"Weight", fmtFloat(plan.Input.Weight)},
		{"Target weight", fmtFloat(plan.Input.TargetWeight)},
	}
	for _, m := range metricRows(plan.Metrics, fmtFloat, intFmt) {
		rows = append(rows, []string{m[0], m[1]})
	}
	rows = append(rows,
		[]string{"Safety", label(plan.Analysis.Safety)},
		[]string{"Weekly change goal", strconv.FormatFloat(plan.WeeklyWeightChangeGoal, 'f', -1, 64)},
		[]string{"Estimated target date", plan.EstimatedTargetDate.Format(contract.DateLayout)},
	)
	if p := plan.Input.Preferences; p.HasDietType() {
		rows = append(rows, []string{"Diet type", p.DietType})
	}
	if p := plan.Input.Preferences; len(p.Allergies) > 0 {
		rows = append(rows, []string{"Allergies", strings.Join(p.Allergies, ", ")})
	}
	if p := plan.Input.Preferences; len(p.Dislikes) > 0 {
		rows = append(rows, []string{"Dislikes", strings.Join(p.Dislikes, ", ")})
	}
	return rows
}
