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

// MySQLGroupRepository implements group persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new group with its permissions.
// Returns groupDomain.ErrGroupNameUsed when the key is taken.
func (m *MySQLGroupRepository) Create(ctx context.Context, group *groupDomain.Group) error {
	querier := database.GetTx(ctx, m.db)

	query := "INSERT INTO `groups` (id, `key`, name, created_at) VALUES (?, ?, ?, ?)"

	_, err := querier.ExecContext(ctx, query,
		group.ID.String(), group.Key, group.Name, group.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return groupDomain.ErrGroupNameUsed
		}
		return apperrors.Wrap(err, "failed to create group")
	}

	for _, permission := range group.Permissions {
		query := `INSERT INTO group_permissions (group_id, permission) VALUES (?, ?)`
		if _, err := querier.ExecContext(ctx, query, group.ID.String(), permission); err != nil {
			return apperrors.Wrap(err, "failed to create group permission")
		}
	}

	return nil
}

// Get retrieves a group by ID with its permissions.
func (m *MySQLGroupRepository) Get(ctx context.Context, groupID uuid.UUID) (*groupDomain.Group, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, `key`, name, created_at FROM `groups` WHERE id = ?"

	var (
		group groupDomain.Group
		id    string
	)
	err := querier.QueryRowContext(ctx, query, groupID.String()).Scan(
		&id,
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

	if group.ID, err = uuid.Parse(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse group id")
	}

	if group.Permissions, err = m.permissionsForGroup(ctx, group.ID); err != nil {
		return nil, err
	}

	return &group, nil
}

// List retrieves groups ordered by key, with permissions.
func (m *MySQLGroupRepository) List(ctx context.Context, offset, limit int) ([]*groupDomain.Group, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, `key`, name, created_at FROM `groups` ORDER BY `key` LIMIT ? OFFSET ?"

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	defer rows.Close()

	var groups []*groupDomain.Group
	for rows.Next() {
		var (
			group groupDomain.Group
			id    string
		)
		if err := rows.Scan(&id, &group.Key, &group.Name, &group.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group")
		}
		if group.ID, err = uuid.Parse(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse group id")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read groups")
	}

	for _, group := range groups {
		if group.Permissions, err = m.permissionsForGroup(ctx, group.ID); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// ReplaceMembers swaps the group's membership for the given user set.
func (m *MySQLGroupRepository) ReplaceMembers(
	ctx context.Context,
	groupID uuid.UUID,
	userIDs []uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	if _, err := querier.ExecContext(ctx,
		`DELETE FROM user_groups WHERE group_id = ?`, groupID.String()); err != nil {
		return apperrors.Wrap(err, "failed to clear group members")
	}

	for _, userID := range userIDs {
		query := `INSERT INTO user_groups (user_id, group_id) VALUES (?, ?)`
		if _, err := querier.ExecContext(ctx, query, userID.String(), groupID.String()); err != nil {
			return apperrors.Wrap(err, "failed to add group member")
		}
	}

	return nil
}

func (m *MySQLGroupRepository) permissionsForGroup(
	ctx context.Context,
	groupID uuid.UUID,
) ([]authDomain.PermissionKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT permission FROM group_permissions WHERE group_id = ? ORDER BY permission`

	rows, err := querier.QueryContext(ctx, query, groupID.String())
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLGroupRepository creates a new MySQL group repository.
func NewMySQLGroupRepository(db *sql.DB) *MySQLGroupRepository {
	return &MySQLGroupRepository{db: db}
}
