package outwriter

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFormulas displays the formulas, tables and thresholds behind the
// calculators. This is a static display that needs no profile.
func WriteFormulas(model schema.FormulaRenderModel, cfg *contract.Config) error {
	return dispatch(cfg, model,
		func(w io.Writer) error {
			return writeCSVRows(w, []string{"section", "name", "value", "detail"}, formulaRecords(model))
		},
		func(w io.Writer) error {
			return writeFormulasText(w, model)
		})
}

func bandLimit(b schema.BandEntry) string {
	if b.UpTo == 0 {
		return "unbounded"
	}
	return "<= " + strconv.FormatFloat(b.UpTo, 'f', -1, 64) + " kg"
}

func formatRatios(r schema.MacroRatios) string {
	return fmt.Sprintf("protein %.0f%% / carbs %.0f%% / fat %.0f%%", r.Protein*100, r.Carbs*100, r.Fat*100)
}

// formulaRecords flattens the reference into CSV records.
func formulaRecords(model schema.FormulaRenderModel) [][]string {
	var records [][]string
	for _, f := range model.Formulas {
		records = append(records, []string{"formula", f.Name, f.Formula, f.Unit})
	}
	for _, a := range model.Activities {
		records = append(records, []string{"activity", string(a.Level), strconv.FormatFloat(a.Multiplier, 'f', -1, 64), a.Description})
	}
	for _, g := range model.Goals {
		records = append(records, []string{"goal", string(g.Goal), strconv.FormatFloat(g.CalorieFactor, 'f', -1, 64), formatRatios(g.Ratios)})
	}
	for _, b := range model.Bands {
		records = append(records, []string{"band", string(b.Direction) + " " + bandLimit(b), strconv.FormatFloat(b.WeeklyRate, 'f', -1, 64), string(b.Tier)})
	}
	for _, k := range slices.Sorted(maps.Keys(model.Thresholds)) {
		records = append(records, []string{"threshold", k, model.Thresholds[k], ""})
	}
	return records
}

func writeFormulasText(w io.Writer, model schema.FormulaRenderModel) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n\n", model.Title, "=======================", model.Description); err != nil {
		return err
	}

	for _, f := range model.Formulas {
		if _, err := fmt.Fprintf(w, "%s: %s\n   Formula: %s (%s)\n", f.Name, f.Purpose, f.Formula, f.Unit); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	activityRows := make([][]string, 0, len(model.Activities))
	for _, a := range model.Activities {
		activityRows = append(activityRows, []string{string(a.Level), strconv.FormatFloat(a.Multiplier, 'f', -1, 64), a.Description})
	}
	if err := writeTable(w, []string{"Activity", "Multiplier", "Description"}, activityRows, tw.AlignLeft); err != nil {
		return err
	}

	goalRows := make([][]string, 0, len(model.Goals))
	for _, g := range model.Goals {
		goalRows = append(goalRows, []string{string(g.Goal), strconv.FormatFloat(g.CalorieFactor, 'f', -1, 64), formatRatios(g.Ratios)})
	}
	if err := writeTable(w, []string{"Goal", "Calories", "Macros"}, goalRows, tw.AlignLeft); err != nil {
		return err
	}

	bandRows := make([][]string, 0, len(model.Bands))
	for _, b := range model.Bands {
		bandRows = append(bandRows, []string{string(b.Direction), bandLimit(b), strconv.FormatFloat(b.WeeklyRate, 'f', -1, 64) + " kg/week", contract.GetPlainTier(b.Tier)})
	}
	if err := writeTable(w, []string{"Direction", "Change", "Rate", "Tier"}, bandRows, tw.AlignLeft); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nThresholds\n"); err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(model.Thresholds)) {
		if _, err := fmt.Fprintf(w, "   %s: %s\n", k, model.Thresholds[k]); err != nil {
			return err
		}
	}
	return nil
}
