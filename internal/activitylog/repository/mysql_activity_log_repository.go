package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
	"github.com/collabhub/collabhub/internal/database"
)

// MySQLActivityLogRepository implements ActivityLogRepository for MySQL.
type MySQLActivityLogRepository struct {
	db *sql.DB
}

// NewMySQLActivityLogRepository creates a new MySQL activity log repository.
func NewMySQLActivityLogRepository(db *sql.DB) *MySQLActivityLogRepository {
	return &MySQLActivityLogRepository{db: db}
}

// Upsert inserts a daily rollup or replaces the count of an existing one.
// The row identity is the (project, contributor, date) triple; the ID of the
// first insert wins.
func (r *MySQLActivityLogRepository) Upsert(ctx context.Context, log *activityDomain.ActivityLog) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		INSERT INTO activity_logs (id, project_id, contributor_id, date, count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE count = VALUES(count)
	`
	_, err := tx.ExecContext(ctx, query,
		log.ID.String(), log.ProjectID.String(), log.ContributorID.String(),
		log.Date, log.Count, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert activity log: %w", err)
	}

	return nil
}

// ListByProject retrieves a project's activity logs, newest day first.
func (r *MySQLActivityLogRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	offset, limit int,
) ([]*activityDomain.ActivityLog, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, contributor_id, date, count, created_at
		FROM activity_logs
		WHERE project_id = ?
		ORDER BY date DESC, contributor_id
		LIMIT ? OFFSET ?
	`
	rows, err := tx.QueryContext(ctx, query, projectID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*activityDomain.ActivityLog
	for rows.Next() {
		log, err := scanMySQLActivityLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity logs: %w", err)
	}

	return logs, nil
}

func scanMySQLActivityLog(rows *sql.Rows) (*activityDomain.ActivityLog, error) {
	var log activityDomain.ActivityLog
	var idStr, projectIDStr, contributorIDStr string

	err := rows.Scan(&idStr, &projectIDStr, &contributorIDStr,
		&log.Date, &log.Count, &log.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse activity log ID: %w", err)
	}
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project ID: %w", err)
	}
	contributorID, err := uuid.Parse(contributorIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contributor ID: %w", err)
	}
	log.ID = id
	log.ProjectID = projectID
	log.ContributorID = contributorID

	return &log, nil
}
