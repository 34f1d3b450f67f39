package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	apperrors "github.com/collabhub/collabhub/internal/errors"
)

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// Issue signs a new JWT for the given user with iss/sub/iat/exp claims.
func (t *tokenService) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.expiration)

	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify validates the token's signature, issuer and time claims and recovers
// the user ID from the subject claim. Every failure mode collapses into
// domain.ErrInvalidToken.
func (t *tokenService) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(tk *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	return userID, nil
}

// NewTokenService creates a TokenService signing HS256 JWTs with the given
// secret. The secret and issuer are fixed for the lifetime of the process.
func NewTokenService(secret string, issuer string, expiration time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
	}
}
