package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/session"
)

// Login prompts for credentials and authenticates against the backend.
// On success the refresh tasks are started.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	cred, err := a.session.Login(ctx, email, password)
	if err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			printlnFn(authErr.Message)
		} else {
			log.Printf("Login failed: %v", err)
		}
		return err
	}

	printlnFn("Angemeldet als " + cred.User.Username)
	a.startRefreshTasks(ctx)
	return nil
}

// Register prompts for the new account fields and creates the account.
// Registration does not log the user in; a separate login follows.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	department, err := GetSimpleText(a.reader, "Enter department (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, api.RegisterRequest{
		Email:      email,
		Username:   username,
		Password:   password,
		Department: department,
	})
	if err != nil {
		log.Printf("Registration failed: %v", err)
		return err
	}

	printlnFn("Account created for " + user.Username + ". Please log in.")
	return nil
}

// Logout ends the session. The session manager clears the persisted
// credential and tears down every polling task.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Abgemeldet.")
	return nil
}
