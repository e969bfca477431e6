package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/olilab/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// ErrAlreadyLoggedIn is returned by Login while a session is active.
var ErrAlreadyLoggedIn = errors.New("already logged in, use logout first")

// Login prompts for an identifier (username, email or LRN) and a password
// and signs in through the session manager. The password is wiped before
// returning. A rejected login returns the API error unchanged.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return ErrAlreadyLoggedIn
	}

	identifier, err := getSimpleText(a.reader, "Enter username, email or LRN", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, password); err != nil {
		a.log.Info(ctx, "login rejected", "identifier", identifier, "error", err)
		return err
	}

	if u := a.session.Snapshot().CurrentUser; u != nil {
		printlnFn(fmt.Sprintf("Welcome, %s!", displayName(u.FullName, u.Username)))
	}
	return nil
}

// Logout ends the local session. It never fails; the error result keeps the
// command surface uniform.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the session state.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	u := snap.CurrentUser
	if u == nil {
		printlnFn("Not logged in (" + snap.Phase().String() + ")")
		return nil
	}

	role := u.Role
	if u.IsAdmin {
		role += ", admin"
	}
	printlnFn(fmt.Sprintf("%s <%s> id=%s role=%s status=%s",
		displayName(u.FullName, u.Username), u.Email, u.ID, role, u.Status))
	return nil
}

func displayName(fullName, username string) string {
	if fullName != "" {
		return fullName
	}
	return username
}
