// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/collabhub/collabhub/cmd/app/commands"
	"github.com/collabhub/collabhub/internal/app"
	"github.com/collabhub/collabhub/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "collabhub",
		Usage:   "Collaboration hub backend",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(
						container.Logger(),
						cfg.DBDriver,
						cfg.DBConnectionString,
					)
				},
			},
			{
				Name:  "create-user",
				Usage: "Register a new user account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "User email address",
					},
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Human-readable user name",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "User password (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer shutdownContainer(container, logger)

					authUC, err := container.AuthUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize auth use case: %w", err)
					}

					return commands.RunCreateUser(
						ctx,
						authUC,
						logger,
						cmd.String("email"),
						cmd.String("name"),
						cmd.String("password"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "create-group",
				Usage: "Create a workspace group with global permissions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Human-readable group name",
					},
					&cli.StringFlag{
						Name:     "permissions",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Comma-separated global permission keys (e.g., 'MANAGE_USER_ACCESS,MANAGE_ALL_PROJECTS')",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer shutdownContainer(container, logger)

					groupUC, err := container.GroupUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize group use case: %w", err)
					}

					return commands.RunCreateGroup(
						ctx,
						groupUC,
						logger,
						cmd.String("name"),
						cmd.String("permissions"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// shutdownContainer closes container resources and logs any errors.
func shutdownContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
