package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/models"
)

const reportHeader = "🎂💃🏽 SHOSHO'S BIRTHDAY CONTRIBUTION"

var kes = message.NewPrinter(language.English)

// Report handles `Report <Month>`.
func Report(ctx context.Context, database *sql.DB, periodName string) (string, error) {
	period, err := db.GetPeriodByName(ctx, database, periodName)
	if errors.Is(err, db.ErrPeriodNotFound) {
		return fmt.Sprintf("❌ Month %q not found.", periodName), nil
	}
	if err != nil {
		return "", err
	}
	entries, err := db.ListPeriodEntries(ctx, database, period.ID)
	if err != nil {
		return "", err
	}
	return BuildReport(period.Name, entries), nil
}

// BuildReport renders the monthly report. Output is byte-stable for a given
// input: fixed category order, members sorted by name within each group, one
// glyph per payment state. Members without a contribution row render with
// amount 0 and the ⏳ glyph, distinct from a recorded-but-unpaid ❌ row.
// The total sums paid amounts only.
func BuildReport(periodName string, entries []models.PeriodEntry) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s Contributions:\n\n", periodName)

	var total int64
	for _, category := range models.CategoryOrder {
		n := 0
		for _, e := range entries {
			if e.Category != category {
				continue
			}
			if n == 0 {
				b.WriteString(string(category))
				b.WriteString("\n")
			}
			n++
			fmt.Fprintf(&b, "%d. %s - %d/= %s\n", n, e.MemberName, e.Amount, statusGlyph(e))
			if e.Paid {
				total += e.Amount
			}
		}
		if n > 0 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "TOTAL: KES %s", kes.Sprintf("%d", total))
	return b.String()
}

func statusGlyph(e models.PeriodEntry) string {
	switch {
	case e.Paid:
		return "✅"
	case e.Recorded:
		return "❌"
	default:
		return "⏳"
	}
}
