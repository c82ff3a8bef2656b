package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/models"
)

const invalidAmountReply = "❌ Invalid amount. Please provide a whole number."

// popAmount peels an optional trailing amount off the argument list. A
// non-numeric last token is left in place (it belongs to the name/category
// grammar); a negative number is reported as invalid.
func popAmount(args []string) (amount int64, ok bool, rest []string, invalid bool) {
	if len(args) == 0 {
		return 0, false, args, false
	}
	last := args[len(args)-1]
	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, false, args, false
	}
	if n < 0 {
		return 0, false, args, true
	}
	return n, true, args[:len(args)-1:len(args)-1], false
}

// resolveMember finds one member by typed name. It returns a user-facing
// reply when the name is unknown or ambiguous; only unexpected store errors
// surface as err.
func resolveMember(ctx context.Context, database *sql.DB, name string) (*models.Member, string, error) {
	matches, err := db.FindMembers(ctx, database, name)
	if err != nil {
		return nil, "", err
	}
	switch {
	case len(matches) == 0:
		return nil, fmt.Sprintf("❌ Member %q not found.", name), nil
	case len(matches) == 1:
		return &matches[0], "", nil
	}
	// Prefer an exact hit before declaring the name ambiguous.
	for i := range matches {
		if strings.EqualFold(matches[i].Name, name) {
			return &matches[i], "", nil
		}
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return nil, fmt.Sprintf("❌ Member name %q is ambiguous: %s. Please use the full name.",
		name, strings.Join(names, ", ")), nil
}
