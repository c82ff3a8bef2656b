package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nthenya/chamabot/internal/models"
)

func CreateMember(ctx context.Context, database *sql.DB, m models.Member) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
INSERT INTO members (name, category, default_amount)
VALUES ($1, $2, $3)
RETURNING id`, m.Name, string(m.Category), m.DefaultAmount).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateMember
		}
		return 0, fmt.Errorf("insert member: %w", err)
	}
	return id, nil
}

// GetMemberByName looks a member up by name, case-insensitively.
func GetMemberByName(ctx context.Context, database *sql.DB, name string) (*models.Member, error) {
	row := database.QueryRowContext(ctx, `
SELECT id, name, category, default_amount, created_at
FROM members WHERE lower(name) = lower($1)`, name)

	var m models.Member
	var category string
	err := row.Scan(&m.ID, &m.Name, &category, &m.DefaultAmount, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select member: %w", err)
	}
	m.Category = models.Category(category)
	return &m, nil
}

// FindMembers resolves a name the way admins type it: an exact match, or a
// leading-words match so "Pauline" finds "Pauline Nthenya". The caller
// decides what to do when several members share the typed prefix.
func FindMembers(ctx context.Context, database *sql.DB, name string) ([]models.Member, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, name, category, default_amount, created_at
FROM members
WHERE lower(name) = lower($1) OR lower(name) LIKE lower($1) || ' %'
ORDER BY name`, name)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.Member
	for rows.Next() {
		var m models.Member
		var category string
		if err := rows.Scan(&m.ID, &m.Name, &category, &m.DefaultAmount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Category = models.Category(category)
		result = append(result, m)
	}
	return result, rows.Err()
}

func ListMembers(ctx context.Context, database *sql.DB) ([]models.Member, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, name, category, default_amount, created_at
FROM members ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.Member
	for rows.Next() {
		var m models.Member
		var category string
		if err := rows.Scan(&m.ID, &m.Name, &category, &m.DefaultAmount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Category = models.Category(category)
		result = append(result, m)
	}
	return result, rows.Err()
}
