// Package repository implements group persistence for PostgreSQL and MySQL.
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
	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
)

// PostgreSQLGroupRepository implements group persistence for PostgreSQL.
type PostgreSQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new group with its permissions.
// Returns groupDomain.ErrGroupNameUsed when the key is taken.
func (p *PostgreSQLGroupRepository) Create(ctx context.Context, group *groupDomain.Group) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO groups (id, key, name, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, group.ID, group.Key, group.Name, group.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return groupDomain.ErrGroupNameUsed
		}
		return apperrors.Wrap(err, "failed to create group")
	}

	for _, permission := range group.Permissions {
		query := `INSERT INTO group_permissions (group_id, permission) VALUES ($1, $2)`
		if _, err := querier.ExecContext(ctx, query, group.ID, permission); err != nil {
			return apperrors.Wrap(err, "failed to create group permission")
		}
	}

	return nil
}

// Get retrieves a group by ID with its permissions.
func (p *PostgreSQLGroupRepository) Get(ctx context.Context, groupID uuid.UUID) (*groupDomain.Group, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, key, name, created_at FROM groups WHERE id = $1`

	var group groupDomain.Group
	err := querier.QueryRowContext(ctx, query, groupID).Scan(
		&group.ID,
		&group.Key,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, groupDomain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group")
	}

	if group.Permissions, err = p.permissionsForGroup(ctx, group.ID); err != nil {
		return nil, err
	}

	return &group, nil
}

// List retrieves groups ordered by key, with permissions.
func (p *PostgreSQLGroupRepository) List(ctx context.Context, offset, limit int) ([]*groupDomain.Group, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, key, name, created_at FROM groups ORDER BY key LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	defer rows.Close()

	var groups []*groupDomain.Group
	for rows.Next() {
		var group groupDomain.Group
		if err := rows.Scan(&group.ID, &group.Key, &group.Name, &group.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read groups")
	}

	for _, group := range groups {
		if group.Permissions, err = p.permissionsForGroup(ctx, group.ID); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// ReplaceMembers swaps the group's membership for the given user set.
func (p *PostgreSQLGroupRepository) ReplaceMembers(
	ctx context.Context,
	groupID uuid.UUID,
	userIDs []uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx,
		`DELETE FROM user_groups WHERE group_id = $1`, groupID); err != nil {
		return apperrors.Wrap(err, "failed to clear group members")
	}

	for _, userID := range userIDs {
		query := `INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2)`
		if _, err := querier.ExecContext(ctx, query, userID, groupID); err != nil {
			return apperrors.Wrap(err, "failed to add group member")
		}
	}

	return nil
}

func (p *PostgreSQLGroupRepository) permissionsForGroup(
	ctx context.Context,
	groupID uuid.UUID,
) ([]authDomain.PermissionKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT permission FROM group_permissions WHERE group_id = $1 ORDER BY permission`

	rows, err := querier.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query group permissions")
	}
	defer rows.Close()

	var keys []authDomain.PermissionKey
	for rows.Next() {
		var key authDomain.PermissionKey
		if err := rows.Scan(&key); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group permission")
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read group permissions")
	}

	return keys, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLGroupRepository creates a new PostgreSQL group repository.
func NewPostgreSQLGroupRepository(db *sql.DB) *PostgreSQLGroupRepository {
	return &PostgreSQLGroupRepository{db: db}
}
