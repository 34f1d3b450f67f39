// Package repository implements the read-only grant store consumed by the
// permission resolution engine.
//
// Provides PostgreSQL and MySQL implementations. Grants are resolved with a
// single join per scope: global permissions through user_groups ->
// group_permissions, project permissions through project_group_users ->
// project_group_permissions constrained to one project. Neither implementation
// caches: every request re-reads the store so permission changes take effect
// on the next request.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	"github.com/collabhub/collabhub/internal/database"
	apperrors "github.com/collabhub/collabhub/internal/errors"
)

// PostgreSQLGrantRepository implements GrantRepository for PostgreSQL.
type PostgreSQLGrantRepository struct {
	db *sql.DB
}

// GlobalPermissions returns the union of permissions across the user's groups.
// An unknown user yields an empty slice, not an error.
func (p *PostgreSQLGrantRepository) GlobalPermissions(
	ctx context.Context,
	userID uuid.UUID,
) ([]authDomain.PermissionKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT DISTINCT gp.permission
			  FROM group_permissions gp
			  JOIN user_groups ug ON ug.group_id = gp.group_id
			  WHERE ug.user_id = $1`

	rows, err := querier.QueryContext(ctx, query, userID)
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
// groups that include the user. The project_groups join pins every grant to
// the given projectID, so grants from other projects can never leak in.
func (p *PostgreSQLGrantRepository) ProjectPermissions(
	ctx context.Context,
	userID uuid.UUID,
	projectID uuid.UUID,
) ([]authDomain.ProjectPermissionKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT DISTINCT pgp.permission
			  FROM project_group_permissions pgp
			  JOIN project_groups pg ON pg.id = pgp.project_group_id
			  JOIN project_group_users pgu ON pgu.project_group_id = pgp.project_group_id
			  WHERE pgu.user_id = $1 AND pg.project_id = $2`

	rows, err := querier.QueryContext(ctx, query, userID, projectID)
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

// NewPostgreSQLGrantRepository creates a new PostgreSQL grant repository.
func NewPostgreSQLGrantRepository(db *sql.DB) *PostgreSQLGrantRepository {
	return &PostgreSQLGrantRepository{db: db}
}
