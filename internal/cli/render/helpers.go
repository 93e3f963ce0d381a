package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatInfo formats an informational note
func FormatInfo(message string) string {
	return color.New(color.FgCyan).Sprintf("ℹ️  %s", message)
}

// FormatTimestamp renders a unix-seconds value, or "-" when unset
func FormatTimestamp(seconds int64) string {
	if seconds == 0 {
		return "-"
	}
	return time.Unix(seconds, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

func verifiedLabel(verified bool) string {
	if verified {
		return verifiedStyle.Sprint("✔︎ verified")
	}
	return notVerifiedStyle.Sprint("✗ unverified")
}

func shortHash(hash string) string {
	if len(hash) <= 18 {
		return hash
	}
	return fmt.Sprintf("%s…%s", hash[:10], hash[len(hash)-6:])
}
