package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/database"
)

// MySQLAPIKeyRepository implements APIKeyRepository for MySQL.
type MySQLAPIKeyRepository struct {
	db *sql.DB
}

// NewMySQLAPIKeyRepository creates a new MySQL API key repository.
func NewMySQLAPIKeyRepository(db *sql.DB) *MySQLAPIKeyRepository {
	return &MySQLAPIKeyRepository{db: db}
}

// Create persists a new API key.
func (r *MySQLAPIKeyRepository) Create(ctx context.Context, apiKey *apikeyDomain.APIKey) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		INSERT INTO api_keys (id, project_id, name, key_hash, encrypted_key, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		apiKey.ID.String(), apiKey.ProjectID.String(), apiKey.Name, apiKey.KeyHash,
		apiKey.EncryptedKey, apiKey.IsActive, apiKey.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return fmt.Errorf("API key hash collision: %w", err)
		}
		return fmt.Errorf("failed to create API key: %w", err)
	}

	return nil
}

// Get retrieves an API key by ID.
func (r *MySQLAPIKeyRepository) Get(ctx context.Context, keyID uuid.UUID) (*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE id = ?
	`
	apiKey, err := scanMySQLAPIKey(tx.QueryRowContext(ctx, query, keyID.String()).Scan)
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
func (r *MySQLAPIKeyRepository) GetActiveByHash(ctx context.Context, keyHash string) (*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE key_hash = ? AND is_active = TRUE
	`
	apiKey, err := scanMySQLAPIKey(tx.QueryRowContext(ctx, query, keyHash).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apikeyDomain.ErrAPIKeyInvalid
		}
		return nil, fmt.Errorf("failed to get API key by hash: %w", err)
	}

	return apiKey, nil
}

// ListByProject retrieves all API keys for a project, newest first.
func (r *MySQLAPIKeyRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*apikeyDomain.APIKey, error) {
	tx := database.GetTx(ctx, r.db)

	query := `
		SELECT id, project_id, name, key_hash, encrypted_key, is_active, created_at, revoked_at
		FROM api_keys
		WHERE project_id = ?
		ORDER BY created_at DESC
	`
	rows, err := tx.QueryContext(ctx, query, projectID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	defer rows.Close()

	var apiKeys []*apikeyDomain.APIKey
	for rows.Next() {
		apiKey, err := scanMySQLAPIKey(rows.Scan)
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
func (r *MySQLAPIKeyRepository) Revoke(
	ctx context.Context,
	projectID uuid.UUID,
	keyID uuid.UUID,
	revokedAt time.Time,
) error {
	tx := database.GetTx(ctx, r.db)

	query := `
		UPDATE api_keys
		SET is_active = FALSE, revoked_at = ?
		WHERE id = ? AND project_id = ? AND is_active = TRUE
	`
	result, err := tx.ExecContext(ctx, query, revokedAt, keyID.String(), projectID.String())
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

func scanMySQLAPIKey(scan func(dest ...any) error) (*apikeyDomain.APIKey, error) {
	var apiKey apikeyDomain.APIKey
	var idStr, projectIDStr string
	var revokedAt sql.NullTime

	err := scan(&idStr, &projectIDStr, &apiKey.Name, &apiKey.KeyHash,
		&apiKey.EncryptedKey, &apiKey.IsActive, &apiKey.CreatedAt, &revokedAt)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API key ID: %w", err)
	}
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project ID: %w", err)
	}
	apiKey.ID = id
	apiKey.ProjectID = projectID
	if revokedAt.Valid {
		apiKey.RevokedAt = &revokedAt.Time
	}

	return &apiKey, nil
}

func isMySQLUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
