package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nthenya/chamabot/internal/db"
)

// MarkPaid handles `MarkPaid <Name> <Month> [Amount]`. The contribution row
// for (member, month) is created on first use and updated afterwards: the
// paid flag is idempotent, paid_at is refreshed, and the amount changes only
// when an explicit override is supplied.
func MarkPaid(ctx context.Context, database *sql.DB, loc *time.Location, args []string) (string, error) {
	amount, hasAmount, rest, invalid := popAmount(args)
	if invalid {
		return invalidAmountReply, nil
	}
	if len(rest) < 2 {
		return "Usage: MarkPaid <Name> <Month> [Amount]", nil
	}

	periodName := rest[len(rest)-1]
	name := strings.Join(rest[:len(rest)-1], " ")

	member, reply, err := resolveMember(ctx, database, name)
	if err != nil {
		return "", err
	}
	if reply != "" {
		return reply, nil
	}

	period, err := db.GetPeriodByName(ctx, database, periodName)
	if errors.Is(err, db.ErrPeriodNotFound) {
		return fmt.Sprintf("❌ Month %q not found.", periodName), nil
	}
	if err != nil {
		return "", err
	}

	if !hasAmount {
		amount = member.DefaultAmount
	}
	c, created, err := db.MarkPaid(ctx, database, member.ID, period.ID, amount, !hasAmount, time.Now().In(loc))
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("✅ Payment recorded!\nMember: %s\nMonth: %s\nAmount: %d KES",
		member.Name, period.Name, c.Amount)
	if !created {
		text += "\n(updated existing record)"
	}
	return text, nil
}
