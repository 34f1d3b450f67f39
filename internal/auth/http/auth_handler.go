package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collabhub/collabhub/internal/auth/http/dto"
	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	"github.com/collabhub/collabhub/internal/httputil"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// AuthHandler handles HTTP requests for sign-up, sign-in and identity lookup.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(useCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		logger:      logger,
	}
}

// SignUpHandler registers a new user.
// POST /api/v1/auth/sign-up - Public route, no credentials required.
// Returns 201 Created with a bearer token and the user.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req dto.SignUpRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authUseCase.SignUpInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}

	output, err := h.authUseCase.SignUp(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.AuthResponse{
		Token: output.Token,
		User:  dto.MapUserToResponse(output.User),
	}

	c.JSON(http.StatusCreated, response)
}

// SignInHandler authenticates an existing user.
// POST /api/v1/auth/sign-in - Public route, no credentials required.
// Returns 200 OK with a bearer token and the user, or 401 on bad credentials.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req dto.SignInRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authUseCase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.authUseCase.SignIn(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.AuthResponse{
		Token: output.Token,
		User:  dto.MapUserToResponse(output.User),
	}

	c.JSON(http.StatusOK, response)
}

// MeHandler returns the authenticated user with group memberships.
// GET /api/v1/auth/me - Requires a verified identity, no permissions.
// Returns 200 OK with the user.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok || identity == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.authUseCase.AuthenticatedUser(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
