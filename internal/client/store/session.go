package store

import (
	"context"
	"errors"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/validate"
	"github.com/Under67/stellar-burgers/internal/common"
)

const (
	msgLoginFailed    = "login failed"
	msgRegisterFailed = "registration failed"
	msgFetchUser      = "failed to load user"
	msgRefreshFailed  = "failed to refresh session"
	msgLogoutFailed   = "logout failed"
	msgUpdateFailed   = "failed to update profile"
)

// Login authenticates with email and password and persists both
// credentials. On failure LoginError holds the server message.
func (s *Store) Login(ctx context.Context, email, password string) error {
	n := s.begin(opLogin)

	data := models.LoginData{Email: email, Password: password}
	if err := validate.Struct(data); err != nil {
		return s.fail(ctx, opLogin, n, invalidInput(err), msgLoginFailed)
	}

	res, err := s.client.Login(ctx, data)
	if err != nil {
		return s.fail(ctx, opLogin, n, err, msgLoginFailed)
	}
	if err := s.creds.Save(ctx, res.AccessToken, res.RefreshToken, email); err != nil {
		return s.fail(ctx, opLogin, n, err, msgLoginFailed)
	}

	s.finish(ctx, opLogin, n, authenticated{op: opLogin, user: userOf(res, email)})
	s.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Register creates an account and signs it in, like Login.
func (s *Store) Register(ctx context.Context, email, name, password string) error {
	n := s.begin(opRegister)

	data := models.RegisterData{Email: email, Name: name, Password: password}
	if err := validate.Struct(data); err != nil {
		return s.fail(ctx, opRegister, n, invalidInput(err), msgRegisterFailed)
	}

	res, err := s.client.Register(ctx, data)
	if err != nil {
		return s.fail(ctx, opRegister, n, err, msgRegisterFailed)
	}
	if err := s.creds.Save(ctx, res.AccessToken, res.RefreshToken, email); err != nil {
		return s.fail(ctx, opRegister, n, err, msgRegisterFailed)
	}

	s.finish(ctx, opRegister, n, authenticated{op: opRegister, user: userOf(res, email)})
	s.log.Info(ctx, "registered", "email", email)
	return nil
}

// FetchSessionUser asks the backend who the current access token belongs
// to. Failure leaves the session unauthenticated.
func (s *Store) FetchSessionUser(ctx context.Context) error {
	n := s.begin(opFetchUser)

	user, err := s.client.GetUser(ctx)
	if err != nil {
		return s.fail(ctx, opFetchUser, n, err, msgFetchUser)
	}

	s.finish(ctx, opFetchUser, n, authenticated{op: opFetchUser, user: *user})
	return nil
}

// RefreshSession trades the durable refresh token for a new credential
// pair. Failure only marks the auth check as done.
func (s *Store) RefreshSession(ctx context.Context) error {
	n := s.begin(opRefresh)

	refresh, err := s.creds.RefreshToken(ctx)
	if err == nil && refresh == "" {
		err = common.ErrNoRefreshToken
	}
	if err != nil {
		return s.fail(ctx, opRefresh, n, err, msgRefreshFailed)
	}

	res, err := s.client.RefreshToken(ctx, refresh)
	if err != nil {
		return s.fail(ctx, opRefresh, n, err, msgRefreshFailed)
	}
	if err := s.creds.Save(ctx, res.AccessToken, res.RefreshToken, ""); err != nil {
		return s.fail(ctx, opRefresh, n, err, msgRefreshFailed)
	}

	s.finish(ctx, opRefresh, n, sessionRefreshed{user: res.User})
	return nil
}

// Logout ends the session on the backend and drops both credentials.
// A failed logout keeps the session as it is.
func (s *Store) Logout(ctx context.Context) error {
	n := s.begin(opLogout)

	refresh, err := s.creds.RefreshToken(ctx)
	if err != nil {
		return s.fail(ctx, opLogout, n, err, msgLogoutFailed)
	}
	if err := s.client.Logout(ctx, refresh); err != nil {
		return s.fail(ctx, opLogout, n, err, msgLogoutFailed)
	}
	if err := s.creds.Clear(ctx); err != nil {
		return s.fail(ctx, opLogout, n, err, msgLogoutFailed)
	}

	s.finish(ctx, opLogout, n, loggedOut{})
	s.log.Info(ctx, "logged out")
	return nil
}

// UpdateProfile sends the non-empty fields of upd and replaces the session
// user with the server's answer. Failures go to UpdateError.
func (s *Store) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	n := s.begin(opUpdateUser)

	if upd.IsEmpty() {
		return s.fail(ctx, opUpdateUser, n, invalidInput(errors.New("nothing to update")), msgUpdateFailed)
	}
	if err := validate.Struct(upd); err != nil {
		return s.fail(ctx, opUpdateUser, n, invalidInput(err), msgUpdateFailed)
	}

	user, err := s.client.UpdateUser(ctx, upd)
	if err != nil {
		return s.fail(ctx, opUpdateUser, n, err, msgUpdateFailed)
	}

	s.finish(ctx, opUpdateUser, n, authenticated{op: opUpdateUser, user: *user})
	return nil
}

// CheckAuth determines the session at startup. With a stored refresh token
// the session is refreshed first and the user is fetched only if that
// worked; without one the user is fetched directly. IsAuthChecked is true
// once it returns.
func (s *Store) CheckAuth(ctx context.Context) error {
	has, err := s.creds.HasRefreshToken(ctx)
	if err != nil {
		s.log.Warn(ctx, "read refresh token", "error", err)
	}

	if has {
		if err := s.RefreshSession(ctx); err != nil {
			return err
		}
	}
	return s.FetchSessionUser(ctx)
}

func userOf(res *models.AuthResult, email string) models.User {
	if res.User != nil {
		return *res.User
	}
	return models.User{Email: email}
}
