package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nthenya/chamabot/internal/models"
)

// MarkPaid upserts the contribution for (memberID, periodID) and flags it
// paid. The single INSERT .. ON CONFLICT statement is what serializes
// concurrent admins marking the same pair: last write wins on amount/paid_at
// and the unique key can never be duplicated. When keepAmount is true an
// existing row keeps its amount (re-mark without an override).
// The returned bool reports whether a new row was created.
func MarkPaid(ctx context.Context, database *sql.DB, memberID, periodID, amount int64, keepAmount bool, paidAt time.Time) (models.Contribution, bool, error) {
	row := database.QueryRowContext(ctx, `
INSERT INTO contributions (member_id, period_id, amount, paid, paid_at)
VALUES ($1, $2, $3, TRUE, $4)
ON CONFLICT ON CONSTRAINT contributions_member_period_key DO UPDATE SET
    amount = CASE WHEN $5 THEN contributions.amount ELSE EXCLUDED.amount END,
    paid = TRUE,
    paid_at = EXCLUDED.paid_at,
    updated_at = now()
RETURNING id, amount, paid_at, (xmax = 0)`,
		memberID, periodID, amount, paidAt, keepAmount)

	c := models.Contribution{MemberID: memberID, PeriodID: periodID, Paid: true}
	var created bool
	var at time.Time
	if err := row.Scan(&c.ID, &c.Amount, &at, &created); err != nil {
		return models.Contribution{}, false, fmt.Errorf("upsert contribution: %w", err)
	}
	c.PaidAt = &at
	return c, created, nil
}

// ListPeriodEntries returns one line per member for the given period, whether
// or not a contribution row exists yet, ordered by member name.
func ListPeriodEntries(ctx context.Context, database *sql.DB, periodID int64) ([]models.PeriodEntry, error) {
	rows, err := database.QueryContext(ctx, `
SELECT m.name, m.category, COALESCE(c.amount, 0), COALESCE(c.paid, FALSE), c.id IS NOT NULL
FROM members m
LEFT JOIN contributions c ON c.member_id = m.id AND c.period_id = $1
ORDER BY m.name`, periodID)
	if err != nil {
		return nil, fmt.Errorf("select period entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.PeriodEntry
	for rows.Next() {
		var e models.PeriodEntry
		var category string
		if err := rows.Scan(&e.MemberName, &category, &e.Amount, &e.Paid, &e.Recorded); err != nil {
			return nil, fmt.Errorf("scan period entry: %w", err)
		}
		e.Category = models.Category(category)
		result = append(result, e)
	}
	return result, rows.Err()
}

// CountContributions reports how many rows exist for a (member, period) pair.
func CountContributions(ctx context.Context, database *sql.DB, memberID, periodID int64) (int, error) {
	var n int
	err := database.QueryRowContext(ctx, `
SELECT COUNT(*) FROM contributions WHERE member_id = $1 AND period_id = $2`, memberID, periodID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contributions: %w", err)
	}
	return n, nil
}
