package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nthenya/chamabot/internal/models"
)

// SeedMonths and SeedRoster hold the canonical InitDB dataset. Seeding is
// idempotent per item: rows that already exist are skipped, never duplicated.
var SeedMonths = []string{"July", "August", "September", "October", "November", "December"}

var SeedRoster = []models.Member{
	{Name: "Pauline Nthenya", Category: models.Parents, DefaultAmount: 500},
	{Name: "Jeniffer Wayua", Category: models.Parents, DefaultAmount: 500},
	{Name: "Agnes Mwende", Category: models.Parents, DefaultAmount: 500},
	{Name: "Cynthia Nzilani", Category: models.Parents, DefaultAmount: 500},

	{Name: "Sharon Mwende", Category: models.GenMillennial, DefaultAmount: 300},
	{Name: "Ian Kyalo", Category: models.GenMillennial, DefaultAmount: 300},
	{Name: "Yvonne Wanza", Category: models.GenMillennial, DefaultAmount: 300},
	{Name: "Churchill Omariba", Category: models.GenMillennial, DefaultAmount: 300},

	{Name: "Oscar Mandela", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Martin Mutua", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Shannel Nthenya", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Victor Mutua", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Wayne Wambua", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Varsha Mutheu", Category: models.GenAlpha, DefaultAmount: 50},
	{Name: "Angel Wanza", Category: models.GenAlpha, DefaultAmount: 50},
}

// Seed inserts the canonical roster and months, skipping anything that is
// already present. It returns how many members and periods were newly added.
func Seed(ctx context.Context, database *sql.DB) (newMembers, newPeriods int, err error) {
	for _, name := range SeedMonths {
		res, err := database.ExecContext(ctx, `
INSERT INTO periods (name) VALUES ($1) ON CONFLICT DO NOTHING`, name)
		if err != nil {
			return 0, 0, fmt.Errorf("seed period %s: %w", name, err)
		}
		n, _ := res.RowsAffected()
		newPeriods += int(n)
	}

	for _, m := range SeedRoster {
		res, err := database.ExecContext(ctx, `
INSERT INTO members (name, category, default_amount)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, m.Name, string(m.Category), m.DefaultAmount)
		if err != nil {
			return 0, 0, fmt.Errorf("seed member %s: %w", m.Name, err)
		}
		n, _ := res.RowsAffected()
		newMembers += int(n)
	}
	return newMembers, newPeriods, nil
}
