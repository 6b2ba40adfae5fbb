package cli

import (
	"context"
	"fmt"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name and password and creates an account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Register(ctx, email, name, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", a.store.State().Session.RegisterError)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", name)
	return nil
}

// Login prompts for credentials, offering the last used email.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	last := ""
	if a.hints != nil {
		if v, err := a.hints.LastEmail(ctx); err == nil && v != "" {
			last = v
			prompt = fmt.Sprintf("Enter email [%s]", v)
		}
	}

	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = last
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", a.store.State().Session.LoginError)
		return err
	}

	if u := a.store.State().Session.User; u != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", u.Name)
	}
	return nil
}

// Logout ends the session. A failed logout keeps the user signed in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", a.store.State().Session.LogoutError)
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	st := a.store.State().Session
	if !st.IsAuthenticated || st.User == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\n", st.User.Name, st.User.Email)
	return nil
}

// Update asks for new profile values; empty answers keep the current ones.
func (a *App) Update(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	upd := models.ProfileUpdate{Name: name, Email: email, Password: string(password)}
	if err := a.store.UpdateProfile(ctx, upd); err != nil {
		fmt.Fprintln(a.out, "Update failed:", a.store.State().Session.UpdateError)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated")
	return a.Profile(ctx)
}
