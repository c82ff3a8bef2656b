package handlers

import (
	"fmt"
	"strings"

	"github.com/nthenya/chamabot/internal/models"
)

// BuildOutstanding renders the reminder sent to admins: members who have not
// paid for the period yet, grouped like the report. Returns "" when everyone
// has paid.
func BuildOutstanding(periodName string, entries []models.PeriodEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏰ %s reminder: contributions still outstanding\n", periodName)

	outstanding := 0
	for _, category := range models.CategoryOrder {
		n := 0
		for _, e := range entries {
			if e.Category != category || e.Paid {
				continue
			}
			if n == 0 {
				b.WriteString("\n")
				b.WriteString(string(category))
				b.WriteString("\n")
			}
			n++
			outstanding++
			fmt.Fprintf(&b, "%d. %s\n", n, e.MemberName)
		}
	}
	if outstanding == 0 {
		return ""
	}
	return strings.TrimRight(b.String(), "\n")
}
