// Package outwriter renders nutriplan results as text tables, JSON or CSV.
package outwriter

import (
	"os"

	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"
	"golang.org/x/term"
)

// GetMaxMessageWidth calculates the maximum width for message columns in
// table output based on the terminal width.
func GetMaxMessageWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Target + Change + BMI + Tier + Rate + Weeks + Months with borders/padding
	baseWidth := 75

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// tierLabel returns the colored tier label when colors are enabled.
func tierLabel(cfg *contract.Config, tier schema.SafetyTier) string {
	if cfg.UseColors {
		return contract.GetColorTier(tier)
	}
	return contract.GetPlainTier(tier)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
