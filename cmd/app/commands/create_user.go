package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
)

// RunCreateUser registers a new user account from the command line.
// Prompts for the password when the flag is omitted. Outputs the user ID and
// email in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
	email string,
	name string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("email", email))

	// Prompt for the password when not provided via flag
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	output, err := authUC.SignUp(ctx, &authUseCase.SignUpInput{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputUserJSON(output, io.Writer)
	} else {
		outputUserText(output, io.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", output.User.ID.String()),
		slog.String("email", email),
	)

	return nil
}

// promptForPassword interactively prompts the user for a password.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(output *authUseCase.AuthOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", output.User.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", output.User.Email)
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(output *authUseCase.AuthOutput, writer io.Writer) {
	result := map[string]string{
		"user_id": output.User.ID.String(),
		"email":   output.User.Email,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
