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

// MySQLContributorRepository implements contributor persistence for MySQL.
// IDs are stored as CHAR(36) strings.
type MySQLContributorRepository struct {
	db *sql.DB
}

// Create inserts a new contributor.
// Returns contributorDomain.ErrContributorNameUsed when the name is taken
// within the project.
func (m *MySQLContributorRepository) Create(
	ctx context.Context,
	contributor *contributorDomain.Contributor,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `
		INSERT INTO contributors (id, project_id, name, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		contributor.ID.String(), contributor.ProjectID.String(), contributor.Name, contributor.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return contributorDomain.ErrContributorNameUsed
		}
		return apperrors.Wrap(err, "failed to create contributor")
	}

	return nil
}

// Get retrieves a contributor by ID.
func (m *MySQLContributorRepository) Get(
	ctx context.Context,
	contributorID uuid.UUID,
) (*contributorDomain.Contributor, error) {
	query := `SELECT id, project_id, name, created_at FROM contributors WHERE id = ?`
	return m.getByQuery(ctx, query, contributorID.String())
}

// GetByName retrieves a project's contributor by name.
func (m *MySQLContributorRepository) GetByName(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	query := `SELECT id, project_id, name, created_at FROM contributors WHERE project_id = ? AND name = ?`
	return m.getByQuery(ctx, query, projectID.String(), name)
}

// ListByProject retrieves a project's contributors ordered by name.
func (m *MySQLContributorRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*contributorDomain.Contributor, error) {
	querier := database.GetTx(ctx, m.db)

	query := `
		SELECT id, project_id, name, created_at
		FROM contributors
		WHERE project_id = ?
		ORDER BY name`

	rows, err := querier.QueryContext(ctx, query, projectID.String())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contributors")
	}
	defer rows.Close()

	var contributors []*contributorDomain.Contributor
	for rows.Next() {
		contributor, err := scanMySQLContributor(rows.Scan)
		if err != nil {
			return nil, err
		}
		contributors = append(contributors, contributor)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read contributors")
	}

	return contributors, nil
}

// Rename changes a contributor's name.
// Returns contributorDomain.ErrContributorNameUsed when the new name is taken
// within the project.
func (m *MySQLContributorRepository) Rename(
	ctx context.Context,
	contributorID uuid.UUID,
	name string,
) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE contributors SET name = ? WHERE id = ?`, name, contributorID.String())
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return contributorDomain.ErrContributorNameUsed
		}
		return apperrors.Wrap(err, "failed to rename contributor")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check rename result")
	}
	if affected == 0 {
		// Renaming to the current name affects zero rows; only report
		// missing contributors as not found.
		if _, getErr := m.Get(ctx, contributorID); getErr != nil {
			return getErr
		}
	}

	return nil
}

func (m *MySQLContributorRepository) getByQuery(
	ctx context.Context,
	query string,
	args ...any,
) (*contributorDomain.Contributor, error) {
	querier := database.GetTx(ctx, m.db)

	row := querier.QueryRowContext(ctx, query, args...)
	contributor, err := scanMySQLContributor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contributorDomain.ErrContributorNotFound
		}
		return nil, err
	}

	return contributor, nil
}

func scanMySQLContributor(scan func(dest ...any) error) (*contributorDomain.Contributor, error) {
	var rawID, rawProjectID string
	var contributor contributorDomain.Contributor

	err := scan(&rawID, &rawProjectID, &contributor.Name, &contributor.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan contributor")
	}

	if contributor.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse contributor ID")
	}
	if contributor.ProjectID, err = uuid.Parse(rawProjectID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse project ID")
	}

	return &contributor, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLContributorRepository creates a new MySQL contributor repository.
func NewMySQLContributorRepository(db *sql.DB) *MySQLContributorRepository {
	return &MySQLContributorRepository{db: db}
}
