// Package repository provides data access implementations for activity logs.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
	"github.com/collabhub/collabhub/internal/database"
)

// PostgreSQLActivityLogRepository implements ActivityLogRepository for PostgreSQL.
type PostgreSQLActivityLogRepository struct {
	db *sql.DB
}

// NewPostgreSQLActivityLogRepository creates a new PostgreSQL activity log repository.
func NewPostgreSQLActivityLogRepository(db *sql.DB) *PostgreSQLActivityLogRepository {
	return &PostgreSQLActivityLogRepository{db: db}
}

// Upsert inserts a daily rollup or replaces the count of an existing one.
// The row identity is the (project, contributor, date) triple; the ID of the
// first insert wins.
func (r *PostgreSQLActivityLogRepository) Upsert(ctx context.Context, log *activityDomain.ActivityLog) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		INSERT INTO activity_logs (id, project_id, contributor_id, date, count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (project_id, contributor_id, date)
		DO UPDATE SET count = EXCLUDED.count
	`
	_, err := tx.ExecContext(ctx, query,
		log.ID, log.ProjectID, log.ContributorID, log.Date, log.Count, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert activity log: %w", err)
	}

	return nil
}

// ListByProject retrieves a project's activity logs, newest day first.
func (r *PostgreSQLActivityLogRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	offset, limit int,
) ([]*activityDomain.ActivityLog, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, contributor_id, date, count, created_at
		FROM activity_logs
		WHERE project_id = $1
		ORDER BY date DESC, contributor_id
		LIMIT $2 OFFSET $3
	`
	rows, err := tx.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*activityDomain.ActivityLog
	for rows.Next() {
		var log activityDomain.ActivityLog
		err := rows.Scan(&log.ID, &log.ProjectID, &log.ContributorID,
			&log.Date, &log.Count, &log.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity logs: %w", err)
	}

	return logs, nil
}
