// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/collabhub/collabhub/internal/app"
	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parsePermissionKeys converts a comma-separated string into global permission keys.
// Returns an error when a key is not part of the catalog.
func parsePermissionKeys(input string) ([]authDomain.PermissionKey, error) {
	parts := strings.Split(input, ",")
	keys := make([]authDomain.PermissionKey, 0, len(parts))

	for _, part := range parts {
		key := authDomain.PermissionKey(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if !authDomain.IsValidPermissionKey(key) {
			return nil, fmt.Errorf(
				"invalid permission key: %s (valid options: %s, %s, %s)",
				key,
				authDomain.ViewAllProjects,
				authDomain.ManageAllProjects,
				authDomain.ManageUserAccess,
			)
		}
		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one permission key is required")
	}

	return keys, nil
}
