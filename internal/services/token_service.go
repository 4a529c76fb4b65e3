package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenServiceImpl struct {
	logger          zerolog.Logger
	issuer          string
	signingKey      []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewTokenService(
	logger zerolog.Logger,
	issuer string,
	signingKey []byte,
	accessTokenTTL time.Duration,
	refreshTokenTTL time.Duration,
) TokenService {
	return &tokenServiceImpl{
		logger:          logger,
		issuer:          issuer,
		signingKey:      signingKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

func (s *tokenServiceImpl) IssueAccessToken(userID int64) (string, error) {
	return s.issueToken(userID, tokenTypeAccess, s.accessTokenTTL)
}

func (s *tokenServiceImpl) IssueRefreshToken(userID int64) (string, error) {
	return s.issueToken(userID, tokenTypeRefresh, s.refreshTokenTTL)
}

func (s *tokenServiceImpl) VerifyAccessToken(token string) (int64, error) {
	return s.verifyToken(token, tokenTypeAccess)
}

func (s *tokenServiceImpl) VerifyRefreshToken(token string) (int64, error) {
	return s.verifyToken(token, tokenTypeRefresh)
}

func (s *tokenServiceImpl) issueToken(userID int64, tokenType string, ttl time.Duration) (string, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate token id")
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	s.logger.Debug().
		Int64("user_id", userID).
		Str("token_type", tokenType).
		Msg("issued token")

	return signed, nil
}

func (s *tokenServiceImpl) verifyToken(token, wantType string) (int64, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&tokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Error().
				Str("token_type", wantType).
				Msg("token expired")
			return 0, ErrTokenExpired
		}

		s.logger.Error().
			Err(err).
			Msg("failed to parse token")
		return 0, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*tokenClaims)
	if !ok || !t.Valid {
		s.logger.Error().Msg("unexpected token claims")
		return 0, ErrTokenInvalid
	}

	if claims.TokenType != wantType {
		s.logger.Error().
			Str("token_type", claims.TokenType).
			Str("want", wantType).
			Msg("token type mismatch")
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject", claims.Subject).
			Msg("failed to parse token subject")
		return 0, ErrTokenInvalid
	}

	return userID, nil
}
