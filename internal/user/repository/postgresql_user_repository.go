// Package repository implements user persistence for PostgreSQL and MySQL.
//
// Users are always loaded with their group memberships and the permissions
// those groups carry, since every consumer of a user record needs them.
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

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user.
// Returns userDomain.ErrEmailInUse when the email is already registered.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, name, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return userDomain.ErrEmailInUse
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID with group memberships.
func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
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

	if user.Groups, err = p.groupsForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email with group memberships.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	if user.Groups, err = p.groupsForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users ordered by creation time, with group memberships.
func (p *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, name, password_hash, created_at
			  FROM users ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*userDomain.User
	for rows.Next() {
		var user userDomain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read users")
	}

	for _, user := range users {
		if user.Groups, err = p.groupsForUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// groupsForUser loads the user's groups and their permissions in one query.
func (p *PostgreSQLUserRepository) groupsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]groupDomain.Group, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT g.id, g.key, g.name, g.created_at, gp.permission
			  FROM groups g
			  JOIN user_groups ug ON ug.group_id = g.id
			  LEFT JOIN group_permissions gp ON gp.group_id = g.id
			  WHERE ug.user_id = $1
			  ORDER BY g.key`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query user groups")
	}
	defer rows.Close()

	return scanGroupRows(rows)
}

// scanGroupRows folds group/permission join rows into group records.
// Rows must be ordered by group so consecutive rows share a group.
func scanGroupRows(rows *sql.Rows) ([]groupDomain.Group, error) {
	var groups []groupDomain.Group

	for rows.Next() {
		var (
			groupID    uuid.UUID
			key        string
			name       string
			createdAt  sql.NullTime
			permission sql.NullString
		)
		if err := rows.Scan(&groupID, &key, &name, &createdAt, &permission); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user group")
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

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
