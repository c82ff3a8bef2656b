package models

import "time"

// Contribution is the (member, period) ledger row. At most one exists per
// pair; PaidAt is set only while Paid is true.
type Contribution struct {
	ID       int64      `db:"id"`
	MemberID int64      `db:"member_id"`
	PeriodID int64      `db:"period_id"`
	Amount   int64      `db:"amount"`
	Paid     bool       `db:"paid"`
	PaidAt   *time.Time `db:"paid_at"`
}

// PeriodEntry is one report line: a member joined with their contribution
// for a period. Recorded is false when no contribution row exists yet.
type PeriodEntry struct {
	MemberName string
	Category   Category
	Amount     int64
	Paid       bool
	Recorded   bool
}
