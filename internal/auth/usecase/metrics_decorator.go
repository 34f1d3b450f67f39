package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/metrics"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// SignUp records metrics for user registrations.
func (a *authUseCaseWithMetrics) SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := a.next.SignUp(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "sign_up", status)
	a.metrics.RecordDuration(ctx, "auth", "sign_up", time.Since(start), status)

	return output, err
}

// SignIn records metrics for sign-in attempts.
func (a *authUseCaseWithMetrics) SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := a.next.SignIn(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "sign_in", status)
	a.metrics.RecordDuration(ctx, "auth", "sign_in", time.Since(start), status)

	return output, err
}

// AuthenticatedUser records metrics for authenticated-user lookups.
func (a *authUseCaseWithMetrics) AuthenticatedUser(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.AuthenticatedUser(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticated_user", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticated_user", time.Since(start), status)

	return user, err
}
