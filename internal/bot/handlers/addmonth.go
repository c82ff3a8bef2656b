package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nthenya/chamabot/internal/db"
)

// AddMonth handles `AddMonth <MonthName>`. Months are immutable once
// created.
func AddMonth(ctx context.Context, database *sql.DB, name string) (string, error) {
	if _, err := db.CreatePeriod(ctx, database, name); err != nil {
		if errors.Is(err, db.ErrDuplicatePeriod) {
			return fmt.Sprintf("❌ Month %q already exists.", name), nil
		}
		return "", err
	}
	return fmt.Sprintf("✅ Month added!\nMonth: %s", name), nil
}
