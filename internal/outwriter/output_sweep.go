package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSweep outputs one row per target of a sweep in the configured format.
func WriteSweep(result schema.SweepResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	return dispatch(cfg, result,
		func(w io.Writer) error {
			return writeSweepCSV(w, result, fmtFloat)
		},
		func(w io.Writer) error {
			return writeSweepTable(w, result, cfg, fmtFloat, intFmt, duration)
		})
}

func writeSweepCSV(w io.Writer, result schema.SweepResult, fmtFloat func(float64) string) error {
	header := []string{"target_weight", "weight_change", "target_bmi", "safety", "weekly_rate", "weeks", "months", "main_message"}
	records := make([][]string, 0, len(result.Points))
	for _, p := range result.Points {
		records = append(records, []string{
			strconv.FormatFloat(p.TargetWeight, 'f', -1, 64),
			fmtFloat(p.WeightChange),
			fmtFloat(p.TargetBMI),
			string(p.Safety),
			strconv.FormatFloat(p.WeeklyRate, 'f', -1, 64),
			strconv.Itoa(p.Weeks),
			fmtFloat(p.Months),
			p.MainMessage,
		})
	}
	return writeCSVRows(w, header, records)
}

func writeSweepTable(w io.Writer, result schema.SweepResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	maxWidth := GetMaxMessageWidth(cfg)
	rows := make([][]string, 0, len(result.Points))
	counts := make(map[schema.SafetyTier]int)
	for _, p := range result.Points {
		counts[p.Safety]++
		rows = append(rows, []string{
			strconv.FormatFloat(p.TargetWeight, 'f', -1, 64),
			fmtFloat(p.WeightChange),
			fmtFloat(p.TargetBMI),
			tierLabel(cfg, p.Safety),
			strconv.FormatFloat(p.WeeklyRate, 'f', -1, 64),
			fmt.Sprintf(intFmt, p.Weeks),
			fmtFloat(p.Months),
			contract.TruncateText(p.MainMessage, maxWidth),
		})
	}
	headers := []string{"Target", "Change", "BMI", "Tier", "Rate", "Weeks", "Months", "Message"}
	if err := writeTable(w, headers, rows, tw.AlignRight); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d targets from %s to %s kg (safe: %d, moderate: %d, risky: %d, dangerous: %d)\n",
		len(result.Points), fmtFloat(result.Min), fmtFloat(result.Max),
		counts[schema.SafeTier], counts[schema.ModerateTier], counts[schema.RiskyTier], counts[schema.DangerousTier]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sweep completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
