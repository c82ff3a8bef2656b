package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/models"
)

// AddMember handles `AddMember <Name> <Category> [Amount]`. The trailing
// numeric token, when present, overrides the category default; the token
// before it is the category; everything else is the member name, so
// multi-word names need no quoting. Re-adding an existing name is rejected,
// never silently updated.
func AddMember(ctx context.Context, database *sql.DB, args []string) (string, error) {
	amount, hasAmount, rest, invalid := popAmount(args)
	if invalid {
		return invalidAmountReply, nil
	}
	if len(rest) < 2 {
		return "Usage: AddMember <Name> <Category> [Amount]\nCategories: Parents, GenMillennial, GenAlpha", nil
	}

	categoryToken := rest[len(rest)-1]
	name := strings.Join(rest[:len(rest)-1], " ")

	category, ok := models.ParseCategory(categoryToken)
	if !ok {
		return "❌ Invalid category. Use: Parents, GenMillennial, or GenAlpha", nil
	}
	if !hasAmount {
		amount = category.DefaultAmount()
	}
	if amount <= 0 {
		return invalidAmountReply, nil
	}

	m := models.Member{Name: name, Category: category, DefaultAmount: amount}
	if _, err := db.CreateMember(ctx, database, m); err != nil {
		if errors.Is(err, db.ErrDuplicateMember) {
			return fmt.Sprintf("❌ Member %q already exists.", name), nil
		}
		return "", err
	}

	return fmt.Sprintf("✅ Member added!\nName: %s\nCategory: %s\nDefault Amount: %d KES",
		name, category, amount), nil
}
