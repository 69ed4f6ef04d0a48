package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]. The
//     shipped schema declares no UNIQUE constraint on email (uniqueness is an
//     application-level lookup before insert), so this mapping only takes
//     effect if such a constraint is added to the schema.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Email, user.PasswordHash, user.RefreshToken)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.RefreshToken, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the first user record whose email matches.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.RefreshToken, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByRefreshToken retrieves the user record holding the given active
// refresh token. Empty tokens never match.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByRefreshToken, refreshToken)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByRefreshToken").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.RefreshToken, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByRefreshToken").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateRefreshToken overwrites the stored refresh token for the given user.
// Any previously issued refresh token stops working at that point.
//
// Error handling:
//   - Statement failure → wrapped in [ErrExecutingStatement].
//   - Zero affected rows → [ErrNoUserWasFound].
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserRefreshToken, refreshToken, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateRefreshToken").
			Str("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
