// Package credentials keeps the two session credentials of the client.
//
// The access token lives only in memory, like a browser cookie, and reads as
// absent once its JWT "exp" claim has passed. The refresh token is durable:
// it is stored in the local database under common.RefreshTokenKey and
// survives restarts, which is what lets the client re-authenticate silently.
package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Under67/stellar-burgers/internal/client/repositories/tokens"
	"github.com/Under67/stellar-burgers/internal/common"
	"github.com/Under67/stellar-burgers/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

// LastEmailKey remembers the email of the last successful login so the
// login prompt can offer it.
const LastEmailKey = "lastEmail"

type Store struct {
	db   *sql.DB
	repo tokens.Repository
	now  func() time.Time

	mu        sync.Mutex
	access    string
	expiresAt time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: tokens.NewSQLiteRepository(db), now: time.Now}
}

// AccessToken returns the current access credential, or "" when none is set
// or it has expired.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.access == "" {
		return ""
	}
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		s.access = ""
		s.expiresAt = time.Time{}
		return ""
	}
	return s.access
}

// SetAccessToken stores token verbatim (the backend hands out "Bearer …"
// values and expects them back unchanged). Tokens whose payload cannot be
// read are kept without an expiry.
func (s *Store) SetAccessToken(token string) {
	exp := tokenExpiry(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = token
	s.expiresAt = exp
}

func (s *Store) ClearAccessToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.expiresAt = time.Time{}
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.repo.Get(ctx, common.RefreshTokenKey)
}

func (s *Store) HasRefreshToken(ctx context.Context) (bool, error) {
	token, err := s.RefreshToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *Store) LastEmail(ctx context.Context) (string, error) {
	return s.repo.Get(ctx, LastEmailKey)
}

// Save stores a fresh credential pair. When email is not empty it is
// remembered in the same transaction as the refresh token.
func (s *Store) Save(ctx context.Context, access, refresh, email string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := tokens.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.RefreshTokenKey, refresh); err != nil {
			return err
		}
		if email != "" {
			if err := repo.Set(ctx, LastEmailKey, email); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.SetAccessToken(access)
	return nil
}

// Clear drops both credentials. The remembered email is kept.
func (s *Store) Clear(ctx context.Context) error {
	s.ClearAccessToken()
	if err := s.repo.Delete(ctx, common.RefreshTokenKey); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// tokenExpiry reads the "exp" claim without verifying the signature; the
// client has no key and only needs to know when to stop sending the token.
func tokenExpiry(token string) time.Time {
	raw := strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if raw == "" {
		return time.Time{}
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
