package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/utils"
	"github.com/MKhiriev/go-cred-pool/models"
)

// AdminPrincipal is the subject of every token issued for the admin API key.
const AdminPrincipal = "admin"

// authService is the concrete implementation of AuthService.
// It verifies the admin API key and manages the JWT token lifecycle.
type authService struct {
	// adminAPIKey is the only key accepted by Login.
	adminAPIKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminAPIKey:   cfg.AdminAPIKey,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks request.APIKey against the configured admin key and issues a
// signed token for [AdminPrincipal].
//
// Returns:
//   - ErrInvalidDataProvided if the key is empty.
//   - ErrWrongAPIKey if it does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.APIKey == "" {
		log.Error().Msg("empty api key provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	// compare digests so the comparison time does not depend on key length
	given := utils.HashString(request.APIKey, a.tokenSignKey)
	expected := utils.HashString(a.adminAPIKey, a.tokenSignKey)
	if a.adminAPIKey == "" || subtle.ConstantTimeCompare([]byte(given), []byte(expected)) != 1 {
		log.Warn().Msg("wrong api key")
		return models.Token{}, ErrWrongAPIKey
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, AdminPrincipal, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
