package cli

import (
	"context"
	"fmt"

	"github.com/fdatrack/fdatrack/internal/common"
)

// Login prompts for credentials and runs the session login flow. The
// password bytes are wiped as soon as the attempt finishes.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.session.Login(ctx, email, string(pw)); err != nil {
		return err
	}

	printlnFn("Logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the cached identity without any network call.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	profile, ok, err := a.session.Profile(ctx)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", profile.DisplayName(), profile.Email)
	if profile.IsSubscribed {
		fmt.Fprintln(a.out, "Subscription: active")
	}
	return nil
}
