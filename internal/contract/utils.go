package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/nutriplan/schema"
)

// Color variables for console output.
var (
	DangerousColor = color.New(color.FgRed, color.Bold) // DangerousColor represents standard danger.
	RiskyColor     = color.New(color.FgMagenta)         // RiskyColor represents strong, distinct warning.
	ModerateColor  = color.New(color.FgYellow)          // ModerateColor represents standard caution, not bold.
	SafeColor      = color.New(color.FgGreen)           // SafeColor represents a goal with no concern.
)

// GetPlainTier returns the plain label of a tier with its icon. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainTier(tier schema.SafetyTier) string {
	return fmt.Sprintf("%s %s", tier.Icon(), tier)
}

// GetColorTier returns a colored tier label for console output (table).
// It uses GetPlainTier to determine the string, and then applies the appropriate color.
func GetColorTier(tier schema.SafetyTier) string {
	text := GetPlainTier(tier)

	switch tier {
	case schema.DangerousTier:
		return DangerousColor.Sprint(text)
	case schema.RiskyTier:
		return RiskyColor.Sprint(text)
	case schema.ModerateTier:
		return ModerateColor.Sprint(text)
	default: // SafeTier
		return SafeColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for profile storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".nutriplan.db"
	}
	return filepath.Join(homeDir, ".nutriplan.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
