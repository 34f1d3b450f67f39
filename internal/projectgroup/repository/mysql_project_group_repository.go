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

// MySQLProjectGroupRepository implements project group persistence for MySQL.
// IDs are stored as CHAR(36) strings.
type MySQLProjectGroupRepository struct {
	db *sql.DB
}

// Create inserts a new project group with its permissions.
// Returns projectGroupDomain.ErrProjectGroupNameUsed when the key is taken
// within the project.
func (m *MySQLProjectGroupRepository) Create(
	ctx context.Context,
	group *projectGroupDomain.ProjectGroup,
) error {
	querier := database.GetTx(ctx, m.db)

	query := "INSERT INTO project_groups (id, project_id, `key`, name, created_at) VALUES (?, ?, ?, ?, ?)"

	_, err := querier.ExecContext(ctx, query,
		group.ID.String(), group.ProjectID.String(), group.Key, group.Name, group.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return projectGroupDomain.ErrProjectGroupNameUsed
		}
		return apperrors.Wrap(err, "failed to create project group")
	}

	for _, permission := range group.Permissions {
		query := `INSERT INTO project_group_permissions (project_group_id, permission) VALUES (?, ?)`
		if _, err := querier.ExecContext(ctx, query, group.ID.String(), permission); err != nil {
			return apperrors.Wrap(err, "failed to create project group permission")
		}
	}

	return nil
}

// Get retrieves a project group by ID with its permissions and member IDs.
func (m *MySQLProjectGroupRepository) Get(
	ctx context.Context,
	groupID uuid.UUID,
) (*projectGroupDomain.ProjectGroup, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, project_id, `key`, name, created_at FROM project_groups WHERE id = ?"

	var rawID, rawProjectID string
	var group projectGroupDomain.ProjectGroup
	err := querier.QueryRowContext(ctx, query, groupID.String()).Scan(
		&rawID,
		&rawProjectID,
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

	if group.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse project group ID")
	}
	if group.ProjectID, err = uuid.Parse(rawProjectID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse project ID")
	}

	if err := m.attachDetails(ctx, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// ListByProject retrieves a project's groups ordered by key.
func (m *MySQLProjectGroupRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*projectGroupDomain.ProjectGroup, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, project_id, `key`, name, created_at FROM project_groups WHERE project_id = ? ORDER BY `key`"

	rows, err := querier.QueryContext(ctx, query, projectID.String())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list project groups")
	}
	defer rows.Close()

	var groups []*projectGroupDomain.ProjectGroup
	for rows.Next() {
		var rawID, rawProjectID string
		var group projectGroupDomain.ProjectGroup
		err := rows.Scan(&rawID, &rawProjectID, &group.Key, &group.Name, &group.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project group")
		}
		if group.ID, err = uuid.Parse(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse project group ID")
		}
		if group.ProjectID, err = uuid.Parse(rawProjectID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse project ID")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read project groups")
	}

	for _, group := range groups {
		if err := m.attachDetails(ctx, group); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// Delete removes a project group scoped by its project.
// A group ID paired with the wrong project is reported as not found.
func (m *MySQLProjectGroupRepository) Delete(ctx context.Context, projectID, groupID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM project_groups WHERE id = ? AND project_id = ?`,
		groupID.String(), projectID.String())
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
func (m *MySQLProjectGroupRepository) ReplaceMembers(
	ctx context.Context,
	groupID uuid.UUID,
	userIDs []uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	if _, err := querier.ExecContext(ctx,
		`DELETE FROM project_group_users WHERE project_group_id = ?`, groupID.String()); err != nil {
		return apperrors.Wrap(err, "failed to clear project group members")
	}

	for _, userID := range userIDs {
		query := `INSERT INTO project_group_users (project_group_id, user_id) VALUES (?, ?)`
		if _, err := querier.ExecContext(ctx, query, groupID.String(), userID.String()); err != nil {
			return apperrors.Wrap(err, "failed to add project group member")
		}
	}

	return nil
}

func (m *MySQLProjectGroupRepository) attachDetails(
	ctx context.Context,
	group *projectGroupDomain.ProjectGroup,
) error {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx,
		`SELECT permission FROM project_group_permissions WHERE project_group_id = ? ORDER BY permission`,
		group.ID.String())
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
		`SELECT user_id FROM project_group_users WHERE project_group_id = ?`, group.ID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to query project group members")
	}
	defer memberRows.Close()

	group.MemberIDs = nil
	for memberRows.Next() {
		var rawUserID string
		if err := memberRows.Scan(&rawUserID); err != nil {
			return apperrors.Wrap(err, "failed to scan project group member")
		}
		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			return apperrors.Wrap(err, "failed to parse member ID")
		}
		group.MemberIDs = append(group.MemberIDs, userID)
	}
	if err := memberRows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to read project group members")
	}

	return nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLProjectGroupRepository creates a new MySQL project group repository.
func NewMySQLProjectGroupRepository(db *sql.DB) *MySQLProjectGroupRepository {
	return &MySQLProjectGroupRepository{db: db}
}
