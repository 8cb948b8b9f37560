package outwriter

import (
	"fmt"
	"os"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
)

// logHeader prints one header line to stderr so stdout only carries results.
func logHeader(cfg *contract.Config, emoji, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cfg.UseEmojis {
		_, _ = fmt.Fprintf(os.Stderr, "%s nutriplan: %s\n", emoji, msg)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "nutriplan: %s\n", msg)
}

// LogMetricsHeader prints the profile a metrics calculation runs on.
func LogMetricsHeader(cfg *contract.Config, p schema.BiometricProfile) {
	fmtFloat, _ := createFormatters(cfg.Precision)
	logHeader(cfg, "🧮", "metrics for %s kg, %s cm, %d years (%s, %s, %s)",
		fmtFloat(p.Weight), fmtFloat(p.Height), p.Age, p.Sex, p.ActivityLevel, p.Goal)
}

// LogGoalHeader prints the move a goal analysis grades.
func LogGoalHeader(cfg *contract.Config, r schema.GoalRequest) {
	fmtFloat, _ := createFormatters(cfg.Precision)
	logHeader(cfg, "🎯", "goal %s kg → %s kg at %s cm (%s)",
		fmtFloat(r.CurrentWeight), fmtFloat(r.TargetWeight), fmtFloat(r.Height), r.Sex)
}

// LogSweepHeader prints the slider range of a target sweep.
func LogSweepHeader(cfg *contract.Config, lo, hi, step float64) {
	fmtFloat, _ := createFormatters(cfg.Precision)
	logHeader(cfg, "📊", "sweep %s → %s kg in steps of %s kg from %s kg",
		fmtFloat(lo), fmtFloat(hi), fmtFloat(step), fmtFloat(cfg.Weight))
}

// LogOnboardHeader prints who is being onboarded.
func LogOnboardHeader(cfg *contract.Config, in schema.OnboardingInput) {
	logHeader(cfg, "📝", "onboarding %s (born %s, store: %s)",
		in.Name, in.DateOfBirth.Format(contract.DateLayout), cfg.StoreBackend)
}

// LogProfileHeader prints the stored profile being looked up.
func LogProfileHeader(cfg *contract.Config, profileID string) {
	logHeader(cfg, "👤", "profile %s (store: %s)", profileID, cfg.StoreBackend)
}
