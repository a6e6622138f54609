package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/client/session"
)

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	email := fs.String("e", "", "email")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *email == "" {
		fmt.Fprintln(a.out, "Usage: register -e EMAIL")
		return ErrUsage
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.Register(ctx, *email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered user %s\n", id)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("e", "", "email")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *email == "" {
		fmt.Fprintln(a.out, "Usage: login -e EMAIL")
		return ErrUsage
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(rctx, *email, password); err != nil {
		return err
	}
	return a.storeTokens(ctx, *email)
}

func (a *App) refresh(ctx context.Context, args []string) error {
	fs := a.flagSet("refresh")
	token := fs.String("t", "", "refresh token")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if *token == "" {
		*token = sess.RefreshToken
	}
	a.client.SetTokens("", *token)

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Refresh(rctx); err != nil {
		return err
	}
	return a.storeTokens(ctx, sess.Email)
}

func (a *App) logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// storeTokens saves the client's current pair and prints it.
func (a *App) storeTokens(ctx context.Context, email string) error {
	access, refresh := a.client.Tokens()
	if err := a.sessions.Save(ctx, session.Session{Email: email, AccessToken: access, RefreshToken: refresh}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "access_token: %s\nrefresh_token: %s\n", access, refresh)
	return nil
}
