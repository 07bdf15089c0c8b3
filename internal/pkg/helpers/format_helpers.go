package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/drosales/campusq/internal/app/models"
)

// FormatCurrency renders a salary as "$12,345.67": two decimals with
// thousands separators.
func FormatCurrency(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	intPart, decPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(decPart)
	return b.String()
}

// Round2 rounds to two decimal places for the structured shape, where
// salaries stay numeric.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatTimeSlots renders the meeting windows of a time slot as
// "{day} {start_hr}:{start_min:02d}-{end_hr}:{end_min:02d}" joined by
// ", ". An empty slot list renders as "N/A".
func FormatTimeSlots(slots []models.TimeSlot) string {
	if len(slots) == 0 {
		return "N/A"
	}

	parts := make([]string, 0, len(slots))
	for _, ts := range slots {
		parts = append(parts, fmt.Sprintf("%s %d:%02d-%d:%02d",
			ts.Day, ts.StartHour, ts.StartMin, ts.EndHour, ts.EndMin))
	}
	return strings.Join(parts, ", ")
}
