package web

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatCount renders a count with thousands separators ("1,234")
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// formatReleased renders a release date, or TBA when unknown
func formatReleased(t *time.Time) string {
	if t == nil {
		return "TBA"
	}
	return t.Format("2006-01-02")
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
