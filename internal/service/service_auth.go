package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT session
// lifecycle. Passwords are stored as bcrypt digests; logged out sessions are
// remembered by their "jti" in the session store until the token expires.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions holds revoked session ids.
	sessions store.SessionStore

	ids       utils.IDGenerator
	validator validators.Validator

	// hashCost is the bcrypt cost used at signup.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessions store.SessionStore, ids utils.IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		ids:            ids,
		validator:      validators.NewRequestValidator(),
		hashCost:       cost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a new account and opens a session for it.
//
// The email is trimmed and lower-cased, the display name defaults to the
// local part of the email. Returns a [validators.Error] for malformed
// credentials or store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, models.Token{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	displayName := strings.TrimSpace(credentials.DisplayName)
	if displayName == "" {
		displayName, _, _ = strings.Cut(credentials.Email, "@")
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        credentials.Email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an existing user and opens a new session.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return models.User{}, models.Token{}, validators.ErrCredentialsRequired
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", credentials.Email).Msg("login with unknown email")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Logout revokes the session carried by tokenString for the rest of its
// lifetime. Missing, expired or forged tokens are ignored.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return nil
	}

	ttl := token.TTL(a.now())
	if token.ID == "" || ttl <= 0 {
		return nil
	}

	if err = a.sessions.Revoke(ctx, token.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, revoked, denylist
// unavailable) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.sessions.IsRevoked(ctx, token.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ParseToken").Msg("session denylist lookup failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if revoked {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Session reports the caller's identity, rejecting sessions whose user has
// been removed.
func (a *authService) Session(ctx context.Context, identity models.Identity) (models.SessionInfo, error) {
	user, err := a.userRepository.FindUserByID(ctx, identity.ID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.SessionInfo{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.SessionInfo{Authenticated: true, ID: user.ID, Email: user.Email}, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
