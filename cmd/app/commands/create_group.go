package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
	groupUseCase "github.com/collabhub/collabhub/internal/group/usecase"
)

// RunCreateGroup creates a new workspace group with global permissions.
// Intended for bootstrapping: the first admin group has to exist before any
// user can manage access through the API. Outputs the group ID in either
// text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateGroup(
	ctx context.Context,
	groupUC groupUseCase.GroupUseCase,
	logger *slog.Logger,
	name string,
	permissionsCSV string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new group", slog.String("name", name))

	permissions, err := parsePermissionKeys(permissionsCSV)
	if err != nil {
		return fmt.Errorf("failed to parse permissions: %w", err)
	}

	group, err := groupUC.Create(ctx, &groupDomain.CreateGroupInput{
		Name:        name,
		Permissions: permissions,
	})
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputGroupJSON(group, io.Writer)
	} else {
		outputGroupText(group, io.Writer)
	}

	logger.Info("group created successfully",
		slog.String("group_id", group.ID.String()),
		slog.String("name", name),
	)

	return nil
}

// outputGroupText outputs the result in human-readable text format.
func outputGroupText(group *groupDomain.Group, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nGroup created successfully!")
	_, _ = fmt.Fprintf(writer, "Group ID: %s\n", group.ID.String())
	_, _ = fmt.Fprintf(writer, "Name: %s\n", group.Name)
	_, _ = fmt.Fprintf(writer, "Key: %s\n", group.Key)
	for _, permission := range group.Permissions {
		_, _ = fmt.Fprintf(writer, "Permission: %s\n", permission)
	}
}

// outputGroupJSON outputs the result in JSON format for machine consumption.
func outputGroupJSON(group *groupDomain.Group, writer io.Writer) {
	permissions := make([]string, 0, len(group.Permissions))
	for _, permission := range group.Permissions {
		permissions = append(permissions, string(permission))
	}

	result := map[string]any{
		"group_id":    group.ID.String(),
		"name":        group.Name,
		"key":         group.Key,
		"permissions": permissions,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
