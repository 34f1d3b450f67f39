package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/database"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// MySQLProjectRepository implements project persistence for MySQL.
// Project IDs are stored as CHAR(36) strings.
type MySQLProjectRepository struct {
	db *sql.DB
}

// Create inserts a new project.
func (m *MySQLProjectRepository) Create(ctx context.Context, project *projectDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	query := `
		INSERT INTO projects (id, name, description, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		project.ID.String(), project.Name, project.Description, project.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create project")
	}

	return nil
}

// Get retrieves a project by ID.
func (m *MySQLProjectRepository) Get(
	ctx context.Context,
	projectID uuid.UUID,
) (*projectDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `
		SELECT id, name, description, last_activity_date, created_at
		FROM projects
		WHERE id = ?`

	var rawID string
	var project projectDomain.Project
	var lastActivity sql.NullTime
	err := querier.QueryRowContext(ctx, query, projectID.String()).Scan(
		&rawID,
		&project.Name,
		&project.Description,
		&lastActivity,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, projectDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}

	if project.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse project ID")
	}
	if lastActivity.Valid {
		project.LastActivityDate = &lastActivity.Time
	}

	return &project, nil
}

// List retrieves projects ordered by creation time.
func (m *MySQLProjectRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*projectDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `
		SELECT id, name, description, last_activity_date, created_at
		FROM projects
		ORDER BY created_at
		LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	var projects []*projectDomain.Project
	for rows.Next() {
		var rawID string
		var project projectDomain.Project
		var lastActivity sql.NullTime
		err := rows.Scan(&rawID, &project.Name, &project.Description, &lastActivity, &project.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
		}
		if project.ID, err = uuid.Parse(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse project ID")
		}
		if lastActivity.Valid {
			project.LastActivityDate = &lastActivity.Time
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read projects")
	}

	return projects, nil
}

// Update stores the project's name and description.
func (m *MySQLProjectRepository) Update(ctx context.Context, project *projectDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE projects SET name = ?, description = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		project.Name, project.Description, project.ID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update project")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		// MySQL reports zero affected rows for no-op updates as well,
		// so confirm the project is actually missing.
		if _, getErr := m.Get(ctx, project.ID); getErr != nil {
			return getErr
		}
	}

	return nil
}

// Delete removes a project. Dependent rows cascade at the database level.
func (m *MySQLProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM projects WHERE id = ?`, projectID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete project")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if affected == 0 {
		return projectDomain.ErrProjectNotFound
	}

	return nil
}

// TouchActivity advances the project's last activity date.
// Earlier timestamps never move the date backwards.
func (m *MySQLProjectRepository) TouchActivity(
	ctx context.Context,
	projectID uuid.UUID,
	at time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `
		UPDATE projects
		SET last_activity_date = ?
		WHERE id = ? AND (last_activity_date IS NULL OR last_activity_date < ?)`

	if _, err := querier.ExecContext(ctx, query, at, projectID.String(), at); err != nil {
		return apperrors.Wrap(err, "failed to record project activity")
	}

	return nil
}

// NewMySQLProjectRepository creates a new MySQL project repository.
func NewMySQLProjectRepository(db *sql.DB) *MySQLProjectRepository {
	return &MySQLProjectRepository{db: db}
}
