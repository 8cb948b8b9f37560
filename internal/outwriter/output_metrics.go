package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/olekukonko/tablewriter/tw"
)

// metricRows lists the metrics as (name, value, unit) triples.
func metricRows(m schema.DerivedMetrics, fmtFloat func(float64) string, intFmt string) [][]string {
	return [][]string{
		{"BMI", fmtFloat(m.BMI), "kg/m2"},
		{"BMR", fmt.Sprintf("%.0f", m.BMR), "kcal/day"},
		{"TDEE", fmt.Sprintf("%.0f", m.TDEE), "kcal/day"},
		{"Ideal weight", fmtFloat(m.IdealWeight), "kg"},
		{"Body fat", fmtFloat(m.BodyFatPercent), "%"},
		{"Daily calories", fmt.Sprintf(intFmt, m.DailyCalories), "kcal/day"},
		{"Protein", fmt.Sprintf(intFmt, m.DailyProtein), "g/day"},
		{"Carbs", fmt.Sprintf(intFmt, m.DailyCarbs), "g/day"},
		{"Fat", fmt.Sprintf(intFmt, m.DailyFat), "g/day"},
	}
}

// WriteMetrics outputs the metrics of a profile in the configured format.
func WriteMetrics(result schema.MetricsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := metricRows(result.Metrics, fmtFloat, intFmt)

	return dispatch(cfg, result,
		func(w io.Writer) error {
			return writeCSVRows(w, []string{"metric", "value", "unit"}, rows)
		},
		func(w io.Writer) error {
			return writeMetricsTable(w, result, rows, duration)
		})
}

func writeMetricsTable(w io.Writer, result schema.MetricsResult, rows [][]string, duration time.Duration) error {
	if err := writeTable(w, []string{"Metric", "Value", "Unit"}, rows, tw.AlignRight); err != nil {
		return err
	}
	m := result.Metrics
	if _, err := fmt.Fprintf(w, "BMI category: %s. Macros supply %d of %d kcal\n",
		result.BMICategory, m.Macros().Energy(), m.DailyCalories); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Computed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
