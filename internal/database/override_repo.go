package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

type overrideRepo struct {
	db dbConn
}

func newOverrideRepo(db dbConn) contract.OverrideRepo {
	return &overrideRepo{db: db}
}

func (r *overrideRepo) Get(ctx context.Context, week entity.WeekKey) (int, bool, error) {
	query := `
		SELECT person_id
		FROM overrides
		WHERE week_key = ?
	`

	// scanned as text so a corrupt value reads as "no override"
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, query, string(week)).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get override: %w", err)
	}

	personID, ok := parsePersonID(raw)
	return personID, ok, nil
}

func (r *overrideRepo) Set(ctx context.Context, week entity.WeekKey, personID int) error {
	query := `
		INSERT INTO overrides (week_key, person_id, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(week_key) DO UPDATE SET
			person_id = excluded.person_id,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, string(week), personID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}

	return nil
}

func (r *overrideRepo) Remove(ctx context.Context, week entity.WeekKey) error {
	query := `DELETE FROM overrides WHERE week_key = ?`

	_, err := r.db.ExecContext(ctx, query, string(week))
	if err != nil {
		return fmt.Errorf("failed to remove override: %w", err)
	}

	return nil
}

func (r *overrideRepo) List(ctx context.Context) (map[entity.WeekKey]int, error) {
	query := `
		SELECT week_key, person_id
		FROM overrides
		ORDER BY week_key ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[entity.WeekKey]int)
	for rows.Next() {
		var (
			week string
			raw  sql.NullString
		)
		if err := rows.Scan(&week, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		if personID, ok := parsePersonID(raw); ok {
			overrides[entity.WeekKey(week)] = personID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}

	return overrides, nil
}

func parsePersonID(raw sql.NullString) (int, bool) {
	if !raw.Valid {
		return 0, false
	}
	id, err := strconv.Atoi(raw.String)
	if err != nil {
		return 0, false
	}
	return id, true
}
