// Package repository provides data access implementations for API keys.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/database"
)

// PostgreSQLAPIKeyRepository implements APIKeyRepository for PostgreSQL.
type PostgreSQLAPIKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLAPIKeyRepository creates a new PostgreSQL API key repository.
func NewPostgreSQLAPIKeyRepository(db *sql.DB) *PostgreSQLAPIKeyRepository {
	return &PostgreSQLAPIKeyRepository{db: db}
}

// Create persists a new API key.
func (r *PostgreSQLAPIKeyRepository) Create(ctx context.Context, apiKey *apikeyDomain.APIKey) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		INSERT INTO api_keys (id, project_id, name, key_hash, encrypted_key, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.ExecContext(ctx, query,
		apiKey.ID, apiKey.ProjectID, apiKey.Name, apiKey.KeyHash,
		apiKey.EncryptedKey, apiKey.IsActive, apiKey.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return fmt.Errorf("API key hash collision: %w", err)
		}
		return fmt.Errorf("failed to create API key: %w", err)
	}

	return nil
}

// Get retrieves an API key by ID.
func (r *PostgreSQLAPIKeyRepository) Get(ctx context.Context, keyID uuid.UUID) (*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE id = $1
	`
	apiKey, err := scanAPIKey(tx.QueryRowContext(ctx, query, keyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apikeyDomain.ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}

	return apiKey, nil
}

// GetActiveByHash retrieves an active API key by its SHA-256 hash.
// Revoked keys and unknown hashes both resolve to ErrAPIKeyInvalid.
func (r *PostgreSQLAPIKeyRepository) GetActiveByHash(ctx context.Context, keyHash string) (*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE key_hash = $1 AND is_active = TRUE
	`
	apiKey, err := scanAPIKey(tx.QueryRowContext(ctx, query, keyHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apikeyDomain.ErrAPIKeyInvalid
		}
		return nil, fmt.Errorf("failed to get API key by hash: %w", err)
	}

	return apiKey, nil
}

// ListByProject retrieves all API keys for a project, newest first.
func (r *PostgreSQLAPIKeyRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE project_id = $1
		ORDER BY created_at DESC
	`
	rows, err := tx.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	defer rows.Close()

	var apiKeys []*apikeyDomain.APIKey
	for rows.Next() {
		apiKey, err := scanAPIKey(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan API key: %w", err)
		}
		apiKeys = append(apiKeys, apiKey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate API keys: %w", err)
	}

	return apiKeys, nil
}

// Revoke deactivates an API key. A key ID paired with the wrong project, or
// a key that is already revoked, is reported as not found.
func (r *PostgreSQLAPIKeyRepository) Revoke(
	ctx context.Context,
	projectID uuid.UUID,
	keyID uuid.UUID,
	revokedAt time.Time,
) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		UPDATE api_keys
		SET is_active = FALSE, revoked_at = $1
		WHERE id = $2 AND project_id = $3 AND is_active = TRUE
	`
	result, err := tx.ExecContext(ctx, query, revokedAt, keyID, projectID)
	if err != nil {
		return fmt.Errorf("failed to revoke API key: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apikeyDomain.ErrAPIKeyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAPIKey(row rowScanner) (*apikeyDomain.APIKey, error) {
	var apiKey apikeyDomain.APIKey
	var revokedAt sql.NullTime

	err := row.Scan(&apiKey.ID, &apiKey.ProjectID, &apiKey.Name, &apiKey.KeyHash,
		&apiKey.EncryptedKey, &apiKey.IsActive, &apiKey.CreatedAt, &revokedAt)
	if err != nil {
		return nil, err
	}
	if revokedAt.Valid {
		apiKey.RevokedAt = &revokedAt.Time
	}

	return &apiKey, nil
}

func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
