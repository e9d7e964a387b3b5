package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Bytes renders a size such as "2.4 MB". Negative sizes render as "0 B".
func Bytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// RelativeTimeFrom renders t relative to now, e.g. "2 hours ago".
func RelativeTimeFrom(t, now time.Time) string {
	if now.Sub(t) < time.Minute && t.Sub(now) < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatMinutes renders a duration in whole minutes, e.g. "25 min".
func FormatMinutes(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d.Minutes()))
}

// FormatHours renders a duration as hours with at most one decimal place.
func FormatHours(d time.Duration) string {
	h := d.Hours()
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// Pluralize picks the singular or plural noun for n.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
