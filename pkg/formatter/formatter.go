// Package formatter holds display helpers shared by the command
// services: colored message printing and the feed's timestamp, clock
// and caption formatting rules.
package formatter

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/soundreel/cli/pkg/output"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
)

// captionPreviewRunes is the cutoff beyond which captions render
// truncated until expanded
const captionPreviewRunes = 100

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintTable prints data as a table
func PrintTable(headers []string, rows [][]string) {
	output.PrintList("", rows, headers)
}

// PrintObject prints an object based on output format
func PrintObject(data interface{}, name string) error {
	return output.Print(name, data)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(data map[string]interface{}) {
	output.PrintRecord("", data)
}

// TimeAgo renders a post timestamp the way the feed shows it: whole
// days under a week, whole weeks after that. Anything under a day is
// "0 days ago".
func TimeAgo(timestamp, now time.Time) string {
	days := int(now.Sub(timestamp).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if days < 7 {
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
	weeks := days / 7
	if weeks == 1 {
		return "1 week ago"
	}
	return fmt.Sprintf("%d weeks ago", weeks)
}

// Clock renders a playback position as m:ss
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// TruncateCaption returns the caption preview: captions at or under the
// preview length pass through untouched, longer ones are cut at the
// rune boundary with an ellipsis.
func TruncateCaption(caption string, expanded bool) string {
	if expanded {
		return caption
	}
	runes := []rune(caption)
	if len(runes) <= captionPreviewRunes {
		return caption
	}
	return string(runes[:captionPreviewRunes]) + "..."
}

// IsTruncatable reports whether a caption exceeds the preview length
func IsTruncatable(caption string) bool {
	return len([]rune(caption)) > captionPreviewRunes
}
