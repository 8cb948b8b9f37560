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

var historyCSVHeader = []string{"entry_id", "profile_id", "weight", "notes", "recorded_at"}

func historyRecord(e schema.WeightEntry) []string {
	return []string{
		e.EntryID,
		e.ProfileID,
		strconv.FormatFloat(e.Weight, 'f', -1, 64),
		e.Notes,
		e.RecordedAt.Format(contract.DateTimeFormat),
	}
}

// WriteProfile outputs a stored profile and its weight history.
func WriteProfile(details schema.ProfileDetails, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	return dispatch(cfg, details,
		func(w io.Writer) error {
			records := make([][]string, 0, len(details.History))
			for _, e := range details.History {
				records = append(records, historyRecord(e))
			}
			return writeCSVRows(w, historyCSVHeader, records)
		},
		func(w io.Writer) error {
			return writeProfileText(w, details, cfg, fmtFloat, intFmt, duration)
		})
}

func writeProfileText(w io.Writer, details schema.ProfileDetails, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	p := details.Profile
	rows := [][]string{
		{"Profile ID", p.ProfileID},
		{"Name", p.Name},
		{"Date of birth", p.DateOfBirth.Format(contract.DateLayout)},
		{"Sex", string(p.Sex)},
		{"Activity", string(p.ActivityLevel)},
		{"Goal", string(p.Goal)},
		{"Weight", fmtFloat(p.Weight)},
		{"Height", fmtFloat(p.Height)},
		{"Target weight", fmtFloat(p.TargetWeight)},
		{"Weekly change goal", strconv.FormatFloat(p.WeeklyWeightChangeGoal, 'f', -1, 64)},
		{"Estimated target date", p.EstimatedTargetDate.Format(contract.DateLayout)},
		{"Safety", tierLabel(cfg, p.Safety)},
		{"Daily calories", fmt.Sprintf(intFmt, p.Metrics.DailyCalories)},
		{"Created", p.CreatedAt.Format(contract.DateTimeFormat)},
	}
	if p.Preferences != nil {
		rows = append(rows, []string{"Diet type", p.Preferences.DietType})
	}
	if err := writeTable(w, []string{"Field", "Value"}, rows, tw.AlignLeft); err != nil {
		return err
	}

	historyRows := make([][]string, 0, len(details.History))
	for i, e := range details.History {
		change := "-"
		if i > 0 {
			change = fmtFloat(e.Weight - details.History[i-1].Weight)
		}
		historyRows = append(historyRows, []string{
			e.RecordedAt.Format(contract.DateTimeFormat),
			fmtFloat(e.Weight),
			change,
			contract.TruncateText(e.Notes, GetMaxMessageWidth(cfg)),
		})
	}
	if err := writeTable(w, []string{"Recorded", "Weight", "Change", "Notes"}, historyRows, tw.AlignRight); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d weigh-ins. Lookup completed in %v\n", len(details.History), duration)
	return err
}

// WriteProfiles outputs a list of stored profiles.
func WriteProfiles(profiles []schema.ProfileRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"profile_id", "name", "goal", "weight", "target_weight", "safety", "created_at"}
	return dispatch(cfg, profiles,
		func(w io.Writer) error {
			records := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				records = append(records, []string{
					p.ProfileID, p.Name, string(p.Goal),
					strconv.FormatFloat(p.Weight, 'f', -1, 64),
					strconv.FormatFloat(p.TargetWeight, 'f', -1, 64),
					string(p.Safety), p.CreatedAt.Format(contract.DateTimeFormat),
				})
			}
			return writeCSVRows(w, header, records)
		},
		func(w io.Writer) error {
			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				rows = append(rows, []string{
					p.ProfileID, p.Name, string(p.Goal),
					fmtFloat(p.Weight), fmtFloat(p.TargetWeight),
					tierLabel(cfg, p.Safety), p.CreatedAt.Format(contract.DateLayout),
				})
			}
			if err := writeTable(w, []string{"ID", "Name", "Goal", "Weight", "Target", "Safety", "Created"}, rows, tw.AlignLeft); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Showing %d profiles. Store backend: %s. Listed in %v\n", len(profiles), cfg.StoreBackend, duration)
			return err
		})
}

// WriteWeightEntry outputs a newly recorded weigh-in.
func WriteWeightEntry(entry schema.WeightEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(cfg, entry,
		func(w io.Writer) error {
			return writeCSVRows(w, historyCSVHeader, [][]string{historyRecord(entry)})
		},
		func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Recorded %s kg for profile %s at %s (entry %s) in %v\n",
				fmtFloat(entry.Weight), entry.ProfileID, entry.RecordedAt.Format(contract.DateTimeFormat), entry.EntryID, duration)
			return err
		})
}
