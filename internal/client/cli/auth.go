package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager. The error message shown on rejection is whatever the server put
// in its error envelope.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return nil
}

// Register prompts for a profile and creates an account. A successful
// register also starts a session, matching the mobile app.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Register failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Logout ends the session. Always succeeds locally; there is no server-side
// invalidation call.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
