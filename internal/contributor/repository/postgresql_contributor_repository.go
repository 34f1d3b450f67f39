// Package repository implements contributor persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
	"github.com/collabhub/collabhub/internal/database"
	apperrors "github.com/collabhub/collabhub/internal/errors"
)

// PostgreSQLContributorRepository implements contributor persistence for PostgreSQL.
type PostgreSQLContributorRepository struct {
	db *sql.DB
}

// Create inserts a new contributor.
// Returns contributorDomain.ErrContributorNameUsed when the name is taken
// within the project.
func (p *PostgreSQLContributorRepository) Create(
	ctx context.Context,
	contributor *contributorDomain.Contributor,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `
		INSERT INTO contributors (id, project_id, name, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query,
		contributor.ID, contributor.ProjectID, contributor.Name, contributor.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return contributorDomain.ErrContributorNameUsed
		}
		return apperrors.Wrap(err, "failed to create contributor")
	}

	return nil
}

// Get retrieves a contributor by ID.
func (p *PostgreSQLContributorRepository) Get(
	ctx context.Context,
	contributorID uuid.UUID,
) (*contributorDomain.Contributor, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, project_id, name, created_at FROM contributors WHERE id = $1`

	var contributor contributorDomain.Contributor
	err := querier.QueryRowContext(ctx, query, contributorID).Scan(
		&contributor.ID,
		&contributor.ProjectID,
		&contributor.Name,
		&contributor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contributorDomain.ErrContributorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contributor")
	}

	return &contributor, nil
}

// GetByName retrieves a project's contributor by name.
func (p *PostgreSQLContributorRepository) GetByName(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, project_id, name, created_at FROM contributors WHERE project_id = $1 AND name = $2`

	var contributor contributorDomain.Contributor
	err := querier.QueryRowContext(ctx, query, projectID, name).Scan(
		&contributor.ID,
		&contributor.ProjectID,
		&contributor.Name,
		&contributor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contributorDomain.ErrContributorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contributor by name")
	}

	return &contributor, nil
}

// ListByProject retrieves a project's contributors ordered by name.
func (p *PostgreSQLContributorRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*contributorDomain.Contributor, error) {
	querier := database.GetTx(ctx, p.db)

	query := `
		SELECT id, project_id, name, created_at
		FROM contributors
		WHERE project_id = $1
		ORDER BY name`

	rows, err := querier.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contributors")
	}
	defer rows.Close()

	var contributors []*contributorDomain.Contributor
	for rows.Next() {
		var contributor contributorDomain.Contributor
		err := rows.Scan(
			&contributor.ID,
			&contributor.ProjectID,
			&contributor.Name,
			&contributor.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan contributor")
		}
		contributors = append(contributors, &contributor)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read contributors")
	}

	return contributors, nil
}

// Rename changes a contributor's name.
// Returns contributorDomain.ErrContributorNameUsed when the new name is taken
// within the project.
func (p *PostgreSQLContributorRepository) Rename(
	ctx context.Context,
	contributorID uuid.UUID,
	name string,
) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE contributors SET name = $1 WHERE id = $2`, name, contributorID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return contributorDomain.ErrContributorNameUsed
		}
		return apperrors.Wrap(err, "failed to rename contributor")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check rename result")
	}
	if affected == 0 {
		return contributorDomain.ErrContributorNotFound
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

// NewPostgreSQLContributorRepository creates a new PostgreSQL contributor repository.
func NewPostgreSQLContributorRepository(db *sql.DB) *PostgreSQLContributorRepository {
	return &PostgreSQLContributorRepository{db: db}
}
