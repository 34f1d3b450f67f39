// Package repository implements project group persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	"github.com/collabhub/collabhub/internal/database"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	projectGroupDomain "github.com/collabhub/collabhub/internal/projectgroup/domain"
)

// PostgreSQLProjectGroupRepository implements project group persistence for PostgreSQL.
type PostgreSQLProjectGroupRepository struct {
	db *sql.DB
}

// Create inserts a new project group with its permissions.
// Returns projectGroupDomain.ErrProjectGroupNameUsed when the key is taken
// within the project.
func (p *PostgreSQLProjectGroupRepository) Create(
	ctx context.Context,
	group *projectGroupDomain.ProjectGroup,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `
		INSERT INTO project_groups (id, project_id, key, name, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query,
		group.ID, group.ProjectID, group.Key, group.Name, group.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return projectGroupDomain.ErrProjectGroupNameUsed
		}
		return apperrors.Wrap(err, "failed to create project group")
	}

	for _, permission := range group.Permissions {
		query := `INSERT INTO project_group_permissions (project_group_id, permission) VALUES ($1, $2)`
		if _, err := querier.ExecContext(ctx, query, group.ID, permission); err != nil {
			return apperrors.Wrap(err, "failed to create project group permission")
		}
	}

	return nil
}

// Get retrieves a project group by ID with its permissions and member IDs.
func (p *PostgreSQLProjectGroupRepository) Get(
	ctx context.Context,
	groupID uuid.UUID,
) (*projectGroupDomain.ProjectGroup, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, project_id, key, name, created_at FROM project_groups WHERE id = $1`

	var group projectGroupDomain.ProjectGroup
	err := querier.QueryRowContext(ctx, query, groupID).Scan(
		&group.ID,
		&group.ProjectID,
		&group.Key,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, projectGroupDomain.ErrProjectGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project group")
	}

	if err := p.attachDetails(ctx, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// ListByProject retrieves a project's groups ordered by key.
func (p *PostgreSQLProjectGroupRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*projectGroupDomain.ProjectGroup, error) {
	querier := database.GetTx(ctx, p.db)

	query := `
		SELECT id, project_id, key, name, created_at
		FROM project_groups
		WHERE project_id = $1
		ORDER BY key`

	rows, err := querier.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list project groups")
	}
	defer rows.Close()

	var groups []*projectGroupDomain.ProjectGroup
	for rows.Next() {
		var group projectGroupDomain.ProjectGroup
		err := rows.Scan(&group.ID, &group.ProjectID, &group.Key, &group.Name, &group.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project group")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read project groups")
	}

	for _, group := range groups {
		if err := p.attachDetails(ctx, group); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// Delete removes a project group scoped by its project.
// A group ID paired with the wrong project is reported as not found.
func (p *PostgreSQLProjectGroupRepository) Delete(
	ctx context.Context,
	projectID, groupID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM project_groups WHERE id = $1 AND project_id = $2`, groupID, projectID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete project group")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if affected == 0 {
		return projectGroupDomain.ErrProjectGroupNotFound
	}

	return nil
}

// ReplaceMembers swaps the project group's membership for the given user set.
func (p *PostgreSQLProjectGroupRepository) ReplaceMembers(
	ctx context.Context,
	groupID uuid.UUID,
	userIDs []uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx,
		`DELETE FROM project_group_users WHERE project_group_id = $1`, groupID); err != nil {
		return apperrors.Wrap(err, "failed to clear project group members")
	}

	for _, userID := range userIDs {
		query := `INSERT INTO project_group_users (project_group_id, user_id) VALUES ($1, $2)`
		if _, err := querier.ExecContext(ctx, query, groupID, userID); err != nil {
			return apperrors.Wrap(err, "failed to add project group member")
		}
	}

	return nil
}

func (p *PostgreSQLProjectGroupRepository) attachDetails(
	ctx context.Context,
	group *projectGroupDomain.ProjectGroup,
) error {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx,
		`SELECT permission FROM project_group_permissions WHERE project_group_id = $1 ORDER BY permission`,
		group.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to query project group permissions")
	}
	defer rows.Close()

	group.Permissions = nil
	for rows.Next() {
		var key authDomain.ProjectPermissionKey
		if err := rows.Scan(&key); err != nil {
			return apperrors.Wrap(err, "failed to scan project group permission")
		}
		group.Permissions = append(group.Permissions, key)
	}
	if err := rows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to read project group permissions")
	}

	memberRows, err := querier.QueryContext(ctx,
		`SELECT user_id FROM project_group_users WHERE project_group_id = $1`, group.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to query project group members")
	}
	defer memberRows.Close()

	group.MemberIDs = nil
	for memberRows.Next() {
		var userID uuid.UUID
		if err := memberRows.Scan(&userID); err != nil {
			return apperrors.Wrap(err, "failed to scan project group member")
		}
		group.MemberIDs = append(group.MemberIDs, userID)
	}
	if err := memberRows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to read project group members")
	}

	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLProjectGroupRepository creates a new PostgreSQL project group repository.
func NewPostgreSQLProjectGroupRepository(db *sql.DB) *PostgreSQLProjectGroupRepository {
	return &PostgreSQLProjectGroupRepository{db: db}
}
