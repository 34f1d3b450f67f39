// Package repository implements project persistence for PostgreSQL and MySQL.
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

// PostgreSQLProjectRepository implements project persistence for PostgreSQL.
type PostgreSQLProjectRepository struct {
	db *sql.DB
}

// Create inserts a new project.
func (p *PostgreSQLProjectRepository) Create(ctx context.Context, project *projectDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	query := `
		INSERT INTO projects (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query,
		project.ID, project.Name, project.Description, project.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create project")
	}

	return nil
}

// Get retrieves a project by ID.
func (p *PostgreSQLProjectRepository) Get(
	ctx context.Context,
	projectID uuid.UUID,
) (*projectDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `
		SELECT id, name, description, last_activity_date, created_at
		FROM projects
		WHERE id = $1`

	var project projectDomain.Project
	var lastActivity sql.NullTime
	err := querier.QueryRowContext(ctx, query, projectID).Scan(
		&project.ID,
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

	if lastActivity.Valid {
		project.LastActivityDate = &lastActivity.Time
	}

	return &project, nil
}

// List retrieves projects ordered by creation time.
func (p *PostgreSQLProjectRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*projectDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `
		SELECT id, name, description, last_activity_date, created_at
		FROM projects
		ORDER BY created_at
		LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	var projects []*projectDomain.Project
	for rows.Next() {
		var project projectDomain.Project
		var lastActivity sql.NullTime
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&lastActivity,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
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
func (p *PostgreSQLProjectRepository) Update(ctx context.Context, project *projectDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE projects SET name = $1, description = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, project.Name, project.Description, project.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update project")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return projectDomain.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project. Dependent rows cascade at the database level.
func (p *PostgreSQLProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
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
func (p *PostgreSQLProjectRepository) TouchActivity(
	ctx context.Context,
	projectID uuid.UUID,
	at time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `
		UPDATE projects
		SET last_activity_date = $1
		WHERE id = $2 AND (last_activity_date IS NULL OR last_activity_date < $1)`

	if _, err := querier.ExecContext(ctx, query, at, projectID); err != nil {
		return apperrors.Wrap(err, "failed to record project activity")
	}

	return nil
}

// NewPostgreSQLProjectRepository creates a new PostgreSQL project repository.
func NewPostgreSQLProjectRepository(db *sql.DB) *PostgreSQLProjectRepository {
	return &PostgreSQLProjectRepository{db: db}
}
