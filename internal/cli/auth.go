package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and a password (entered twice)
// and attempts to create a new account via the AuthService.
//
// The password byte slices are wiped before returning. Any I/O or service
// error is returned unchanged after being reported to the user.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter a password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		printlnFn("Passwords do not match.")
		return common.ErrorValidation
	}

	if err := a.authService.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			printlnFn("Username already taken.")
		} else {
			a.printError(err)
		}
		return err
	}

	printlnFn("Registration successful.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// returned session becomes the one all task commands act on.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("Error: no such user.")
		case errors.Is(err, common.ErrorInvalidCredentials):
			printlnFn("Error: incorrect password.")
		default:
			a.printError(err)
		}
		return err
	}

	a.session = sess
	a.logger.Info(ctx, "login successful", "user", sess.Username)
	printlnFn(fmt.Sprintf("Login successful. Welcome, %s!", sess.Username))
	return nil
}

// Logout drops the current session.
func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.logger.Info(ctx, "logged out", "user", a.session.Username)
	}
	a.session = nil
	printlnFn("Logged out.")
	return nil
}

// printError reports an error to the terminal in one line. Sentinels get a
// friendly message; everything else is printed as-is.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, common.ErrorUnavailable):
		printlnFn("Error: the remote store is unavailable, try again later.")
	case errors.Is(err, common.ErrorValidation):
		printlnFn("Error:", err.Error())
	case errors.Is(err, common.ErrorNotFound):
		printlnFn("Error: not found.")
	default:
		printlnFn("Error:", err.Error())
	}
}
