package services

import (
	"context"
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/zenith-todo/zenith-api/internal/models"
)

type authServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewAuthService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) AuthService {
	return &authServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	user := models.User{
		Username: params.Username,
		Email:    params.Email,
	}

	passwordHash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}
	user.PasswordHash = passwordHash

	const insertUserQuery = `
INSERT INTO users (username,
                   email,
                   password_hash)
VALUES ($1, $2, $3)
RETURNING id, created_at
`
	err = s.pgPool.QueryRow(
		ctx,
		insertUserQuery,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(
		&user.ID,
		&user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			s.logger.Error().
				Str("username", user.Username).
				Msg("username or email already taken")
			return nil, ErrUserAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("inserted user")

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("registered user")
	return &user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*models.User, error) {
	user := models.User{
		Username: params.Username,
	}

	const selectUserByUsernameQuery = `
SELECT id,
       email,
       password_hash,
       created_at
FROM users
WHERE username = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectUserByUsernameQuery,
		user.Username,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same error as a password mismatch, so the response
			// can't be used to enumerate usernames.
			s.logger.Error().
				Str("username", user.Username).
				Msg("user not found")
			return nil, ErrInvalidCredentials
		}

		s.logger.Error().
			Err(err).
			Str("username", user.Username).
			Msg("failed to select user by username")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Msg("selected user by username")

	match, err := argon2id.ComparePasswordAndHash(params.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Int64("user_id", user.ID).
			Msg("password mismatch")
		return nil, ErrInvalidCredentials
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("logged in")
	return &user, nil
}

func (s *authServiceImpl) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user := models.User{
		ID: userID,
	}

	const selectUserByIDQuery = `
SELECT username,
       email,
       created_at
FROM users
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectUserByIDQuery,
		user.ID,
	).Scan(
		&user.Username,
		&user.Email,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Int64("user_id", user.ID).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("user_id", user.ID).
			Msg("failed to select user by id")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Time("created_at", user.CreatedAt).
		Msg("selected user by id")

	return &user, nil
}
