package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
)

func (a *App) notes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: notes list|save|delete")
		return ErrUsage
	}

	switch args[0] {
	case "list":
		return a.listNotes(ctx, args[1:])
	case "save":
		return a.saveNote(ctx, args[1:])
	case "delete":
		return a.deleteNote(ctx, args[1:])
	default:
		fmt.Fprintln(a.out, "Unknown notes command:", args[0])
		return ErrUsage
	}
}

type tokenFlags struct {
	access  *string
	refresh *string
}

func addTokenFlags(fs *flag.FlagSet) tokenFlags {
	return tokenFlags{
		access:  fs.String("t", "", "access token (default: saved session)"),
		refresh: fs.String("r", "", "refresh token (default: saved session)"),
	}
}

// authorize loads tokens into the client and returns the session they
// came from.
func (a *App) authorize(ctx context.Context, tf tokenFlags) (session.Session, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return session.Session{}, err
	}

	access, refresh := *tf.access, *tf.refresh
	if access == "" {
		access = sess.AccessToken
		if refresh == "" {
			refresh = sess.RefreshToken
		}
	}
	a.client.SetTokens(access, refresh)
	return sess, nil
}

// persistRotation saves the pair if the client refreshed it mid-call.
func (a *App) persistRotation(ctx context.Context, sess session.Session, before string) error {
	access, refresh := a.client.Tokens()
	if access == before {
		return nil
	}
	sess.AccessToken, sess.RefreshToken = access, refresh
	return a.sessions.Save(ctx, sess)
}

func (a *App) listNotes(ctx context.Context, args []string) error {
	fs := a.flagSet("notes list")
	tf := addTokenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	sess, err := a.authorize(ctx, tf)
	if err != nil {
		return err
	}
	before, _ := a.client.Tokens()

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.ListNotes(rctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notes")
	} else {
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tCOLOR\tTITLE")
		for _, n := range list {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", n.ID, n.CreatedAt.Format(time.RFC3339), n.Color, n.Title)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return a.persistRotation(ctx, sess, before)
}

func (a *App) saveNote(ctx context.Context, args []string) error {
	fs := a.flagSet("notes save")
	tf := addTokenFlags(fs)
	id := fs.String("id", "", "note id (empty creates a new note)")
	title := fs.String("title", "", "title")
	content := fs.String("content", "", "content")
	color := fs.Int64("color", 0, "color")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	sess, err := a.authorize(ctx, tf)
	if err != nil {
		return err
	}
	before, _ := a.client.Tokens()

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	n, err := a.client.SaveNote(rctx, client.NoteInput{ID: *id, Title: *title, Content: *content, Color: *color})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved note %s\n", n.ID)
	return a.persistRotation(ctx, sess, before)
}

func (a *App) deleteNote(ctx context.Context, args []string) error {
	fs := a.flagSet("notes delete")
	tf := addTokenFlags(fs)
	id := fs.String("id", "", "note id")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *id == "" {
		fmt.Fprintln(a.out, "Usage: notes delete -id ID")
		return ErrUsage
	}

	sess, err := a.authorize(ctx, tf)
	if err != nil {
		return err
	}
	before, _ := a.client.Tokens()

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.DeleteNote(rctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted note %s\n", *id)
	return a.persistRotation(ctx, sess, before)
}
