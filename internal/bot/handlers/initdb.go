package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/models"
)

// InitDB handles `InitDB`: seeds the canonical roster and months. Running it
// again adds nothing and reports zero new rows.
func InitDB(ctx context.Context, database *sql.DB) (string, error) {
	newMembers, newMonths, err := db.Seed(ctx, database)
	if err != nil {
		return "", err
	}

	counts := map[models.Category]int{}
	for _, m := range db.SeedRoster {
		counts[m.Category]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Database initialized!\nNew members: %d\nNew months: %d\n\n📊 Roster:\n", newMembers, newMonths)
	for _, category := range models.CategoryOrder {
		fmt.Fprintf(&b, "- %s: %d members\n", category, counts[category])
	}
	fmt.Fprintf(&b, "- Total: %d members\nMonths: %s to %s",
		len(db.SeedRoster), db.SeedMonths[0], db.SeedMonths[len(db.SeedMonths)-1])
	return b.String(), nil
}
