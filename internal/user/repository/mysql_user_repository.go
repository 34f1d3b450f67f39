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
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// MySQLUserRepository implements user persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user.
// Returns userDomain.ErrEmailInUse when the email is already registered.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, email, name, password_hash, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID.String(),
		user.Email,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return userDomain.ErrEmailInUse
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID with group memberships.
func (m *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	return m.getByColumn(ctx, "id", userID.String())
}

// GetByEmail retrieves a user by email with group memberships.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return m.getByColumn(ctx, "email", email)
}

func (m *MySQLUserRepository) getByColumn(
	ctx context.Context,
	column, value string,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE ` + column + ` = ?`

	var (
		user userDomain.User
		id   string
	)
	err := querier.QueryRowContext(ctx, query, value).Scan(
		&id,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if user.ID, err = uuid.Parse(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse user id")
	}

	if user.Groups, err = m.groupsForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users ordered by creation time, with group memberships.
func (m *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, name, password_hash, created_at
			  FROM users ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*userDomain.User
	for rows.Next() {
		var (
			user userDomain.User
			id   string
		)
		if err := rows.Scan(
			&id,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if user.ID, err = uuid.Parse(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse user id")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read users")
	}

	for _, user := range users {
		if user.Groups, err = m.groupsForUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// groupsForUser loads the user's groups and their permissions in one query.
func (m *MySQLUserRepository) groupsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]groupDomain.Group, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT g.id, g.`key`, g.name, g.created_at, gp.permission" + `
			  FROM ` + "`groups`" + ` g
			  JOIN user_groups ug ON ug.group_id = g.id
			  LEFT JOIN group_permissions gp ON gp.group_id = g.id
			  WHERE ug.user_id = ?
			  ORDER BY g.` + "`key`"

	rows, err := querier.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query user groups")
	}
	defer rows.Close()

	return scanMySQLGroupRows(rows)
}

// scanMySQLGroupRows folds group/permission join rows into group records.
// Rows must be ordered by group so consecutive rows share a group.
func scanMySQLGroupRows(rows *sql.Rows) ([]groupDomain.Group, error) {
	var groups []groupDomain.Group

	for rows.Next() {
		var (
			id         string
			key        string
			name       string
			createdAt  sql.NullTime
			permission sql.NullString
		)
		if err := rows.Scan(&id, &key, &name, &createdAt, &permission); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user group")
		}

		groupID, err := uuid.Parse(id)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse group id")
		}

		if len(groups) == 0 || groups[len(groups)-1].ID != groupID {
			groups = append(groups, groupDomain.Group{
				ID:        groupID,
				Key:       key,
				Name:      name,
				CreatedAt: createdAt.Time,
			})
		}
		if permission.Valid {
			last := &groups[len(groups)-1]
			last.Permissions = append(last.Permissions, authDomain.PermissionKey(permission.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read user groups")
	}

	return groups, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
