package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuid generates user IDs and opaque refresh tokens.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuid:           utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both email and password are non-empty, checks that no
// account with the same email exists yet, hashes the password with bcrypt,
// and delegates persistence to the UserRepository.
//
// The existence check and the insert are two separate statements, so two
// concurrent registrations for the same email can both pass the check; the
// first reader of such an account wins on login.
//
// Returns the persisted user (with a server-assigned ID and CreatedAt) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists if the email is already taken.
//   - A wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn().Str("email", email).Msg("registration rejected: email already taken")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.uuid.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both email and password are non-empty, looks up the
// account by email, compares the bcrypt hash, generates a new opaque refresh
// token (overwriting any previously stored one), and issues a fresh access
// token.
//
// Returns the authenticated user record (carrying the new refresh token) and
// the access token, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match. Both cases collapse so a caller cannot probe for accounts.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, models.Token{}, ErrWrongPassword
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Warn().Str("user_id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
			return models.User{}, models.Token{}, ErrWrongPassword
		}
		log.Err(err).Str("email", email).Msg("password check failed")
		return models.User{}, models.Token{}, fmt.Errorf("password check failed: %w", err)
	}

	refreshToken := a.uuid.Generate()
	if err = a.userRepository.UpdateRefreshToken(ctx, foundUser.ID, refreshToken); err != nil {
		log.Err(err).Str("user_id", foundUser.ID).Msg("refresh token update failed")
		return models.User{}, models.Token{}, fmt.Errorf("refresh token update failed: %w", err)
	}
	foundUser.RefreshToken = refreshToken

	accessToken, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, accessToken, nil
}

// Refresh exchanges an opaque refresh token for a fresh access token.
//
// The refresh token is looked up verbatim and is NOT rotated: the same token
// stays valid until the next login overwrites it.
//
// Returns the owning user and the fresh access token, or:
//   - ErrInvalidDataProvided if refreshToken is empty.
//   - ErrUnknownRefreshToken if no user holds the token.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		log.Error().Msg("empty refresh token provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Msg("unknown refresh token presented")
			return models.User{}, models.Token{}, ErrUnknownRefreshToken
		}
		log.Err(err).Msg("user search by refresh token failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by refresh token failed: %w", err)
	}

	accessToken, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, accessToken, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email as the subject, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
