package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestTokenService(accessTTL, refreshTTL time.Duration) TokenService {
	return NewTokenService(
		zerolog.Nop(),
		"test-issuer",
		[]byte("test-signing-key"),
		accessTTL,
		refreshTTL,
	)
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	tokens := newTestTokenService(time.Hour, 30*24*time.Hour)

	const userID int64 = 42
	token, err := tokens.IssueAccessToken(userID)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("IssueAccessToken() returned empty token")
	}

	got, err := tokens.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken() error = %v", err)
	}
	if got != userID {
		t.Errorf("VerifyAccessToken() = %d, want %d", got, userID)
	}
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	tokens := newTestTokenService(time.Hour, 30*24*time.Hour)

	const userID int64 = 7
	token, err := tokens.IssueRefreshToken(userID)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v", err)
	}

	got, err := tokens.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken() error = %v", err)
	}
	if got != userID {
		t.Errorf("VerifyRefreshToken() = %d, want %d", got, userID)
	}
}

func TestTokenService_TypeClaimIsEnforced(t *testing.T) {
	tokens := newTestTokenService(time.Hour, 30*24*time.Hour)

	accessToken, err := tokens.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	refreshToken, err := tokens.IssueRefreshToken(1)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v", err)
	}

	if _, err = tokens.VerifyRefreshToken(accessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyRefreshToken(access token) error = %v, want ErrTokenInvalid", err)
	}
	if _, err = tokens.VerifyAccessToken(refreshToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken(refresh token) error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(-time.Minute, -time.Minute)

	token, err := tokens.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	_, err = tokens.VerifyAccessToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_InvalidTokens(t *testing.T) {
	tokens := newTestTokenService(time.Hour, 30*24*time.Hour)

	otherKey := NewTokenService(
		zerolog.Nop(),
		"test-issuer",
		[]byte("another-signing-key"),
		time.Hour,
		30*24*time.Hour,
	)
	foreignToken, err := otherKey.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	otherIssuer := NewTokenService(
		zerolog.Nop(),
		"someone-else",
		[]byte("test-signing-key"),
		time.Hour,
		30*24*time.Hour,
	)
	wrongIssuerToken, err := otherIssuer.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty string",
			token: "",
		},
		{
			name:  "not a jwt",
			token: "definitely-not-a-token",
		},
		{
			name:  "wrong signing key",
			token: foreignToken,
		},
		{
			name:  "wrong issuer",
			token: wrongIssuerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.VerifyAccessToken(tt.token)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("VerifyAccessToken() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}
