package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nthenya/chamabot/internal/models"
)

func CreatePeriod(ctx context.Context, database *sql.DB, name string) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
INSERT INTO periods (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicatePeriod
		}
		return 0, fmt.Errorf("insert period: %w", err)
	}
	return id, nil
}

func GetPeriodByName(ctx context.Context, database *sql.DB, name string) (*models.Period, error) {
	row := database.QueryRowContext(ctx, `
SELECT id, name, created_at FROM periods WHERE lower(name) = lower($1)`, name)

	var p models.Period
	err := row.Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select period: %w", err)
	}
	return &p, nil
}

func ListPeriods(ctx context.Context, database *sql.DB) ([]models.Period, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, name, created_at FROM periods ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("select periods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.Period
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
