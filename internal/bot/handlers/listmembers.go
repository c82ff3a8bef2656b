package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/models"
)

// ListMembers handles `ListMembers`.
func ListMembers(ctx context.Context, database *sql.DB) (string, error) {
	members, err := db.ListMembers(ctx, database)
	if err != nil {
		return "", err
	}
	if len(members) == 0 {
		return "No members found in the database.", nil
	}
	return BuildMemberList(members), nil
}

// BuildMemberList renders the roster grouped by category in fixed order,
// names sorted within each group. Empty groups are omitted.
func BuildMemberList(members []models.Member) string {
	var b strings.Builder
	b.WriteString("📋 ALL MEMBERS\n")

	for _, category := range models.CategoryOrder {
		n := 0
		for _, m := range members {
			if m.Category != category {
				continue
			}
			if n == 0 {
				b.WriteString("\n")
				b.WriteString(string(category))
				b.WriteString("\n")
			}
			n++
			fmt.Fprintf(&b, "%d. %s - %d KES\n", n, m.Name, m.DefaultAmount)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
