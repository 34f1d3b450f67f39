package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	"github.com/collabhub/collabhub/internal/database"
	apperrors "github.com/collabhub/collabhub/internal/errors"
)

// MySQLGrantRepository implements GrantRepository for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLGrantRepository struct {
	db *sql.DB
}

// GlobalPermissions returns the union of permissions across the user's groups.
// An unknown user yields an empty slice, not an error.
func (m *MySQLGrantRepository) GlobalPermissions(
	ctx context.Context,
	userID uuid.UUID,
) ([]authDomain.PermissionKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT DISTINCT gp.permission
			  FROM group_permissions gp
			  JOIN user_groups ug ON ug.group_id = gp.group_id
			  WHERE ug.user_id = ?`

	rows, err := querier.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query global permissions")
	}
	defer rows.Close()

	var keys []authDomain.PermissionKey
	for rows.Next() {
		var key authDomain.PermissionKey
		if err := rows.Scan(&key); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan global permission")
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read global permissions")
	}

	return keys, nil
}

// ProjectPermissions returns the union of permissions across the project's
// groups that include the user, constrained to the given projectID.
func (m *MySQLGrantRepository) ProjectPermissions(
	ctx context.Context,
	userID uuid.UUID,
	projectID uuid.UUID,
) ([]authDomain.ProjectPermissionKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT DISTINCT pgp.permission
			  FROM project_group_permissions pgp
			  JOIN project_groups pg ON pg.id = pgp.project_group_id
			  JOIN project_group_users pgu ON pgu.project_group_id = pgp.project_group_id
			  WHERE pgu.user_id = ? AND pg.project_id = ?`

	rows, err := querier.QueryContext(ctx, query, userID.String(), projectID.String())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query project permissions")
	}
	defer rows.Close()

	var keys []authDomain.ProjectPermissionKey
	for rows.Next() {
		var key authDomain.ProjectPermissionKey
		if err := rows.Scan(&key); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project permission")
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read project permissions")
	}

	return keys, nil
}

// NewMySQLGrantRepository creates a new MySQL grant repository.
func NewMySQLGrantRepository(db *sql.DB) *MySQLGrantRepository {
	return &MySQLGrantRepository{db: db}
}
