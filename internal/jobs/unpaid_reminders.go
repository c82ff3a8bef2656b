package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nthenya/chamabot/internal/bot/handlers"
	"github.com/nthenya/chamabot/internal/config"
	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/observability"
	"github.com/nthenya/chamabot/internal/wa"
)

// UnpaidReminder builds a job that messages every admin the list of members
// still owing for the month matching the current calendar month. Nothing is
// sent when that month has not been opened or when everyone has paid.
func UnpaidReminder(database *sql.DB, sender *wa.Sender, cfg *config.Config) Job {
	return func(ctx context.Context) error {
		monthName := time.Now().In(cfg.Location).Month().String()
		period, err := db.GetPeriodByName(ctx, database, monthName)
		if errors.Is(err, db.ErrPeriodNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		entries, err := db.ListPeriodEntries(ctx, database, period.ID)
		if err != nil {
			return err
		}
		text := handlers.BuildOutstanding(period.Name, entries)
		if text == "" {
			return nil
		}

		for _, admin := range cfg.AdminList() {
			if err := sender.Send(admin, text); err != nil {
				observability.CaptureErr(err)
			}
		}
		return nil
	}
}
