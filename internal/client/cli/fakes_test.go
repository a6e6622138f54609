package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
)

type fakeClient struct {
	access, refresh string

	regEmail, regPass string
	regID             string
	regErr            error

	loginErr error
	// rotateOnCall simulates an automatic refresh during a note call.
	rotateOnCall bool

	saved   client.NoteInput
	notes   []client.Note
	deleted string
	err     error
	closed  bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { f.closed = true; return nil }
func (f *fakeClient) Register(_ context.Context, email, password string) (string, error) {
	f.regEmail, f.regPass = email, password
	return f.regID, f.regErr
}
func (f *fakeClient) Login(context.Context, string, string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.access, f.refresh = "a1", "r1"
	return nil
}
func (f *fakeClient) Refresh(context.Context) error {
	if f.refresh == "" {
		return client.ErrUnauthorized
	}
	f.access, f.refresh = "a-"+f.refresh, "r-"+f.refresh
	return nil
}
func (f *fakeClient) rotate() {
	if f.rotateOnCall {
		f.access, f.refresh = "rotated-a", "rotated-r"
	}
}
func (f *fakeClient) SaveNote(_ context.Context, in client.NoteInput) (*client.Note, error) {
	f.rotate()
	f.saved = in
	if f.err != nil {
		return nil, f.err
	}
	return &client.Note{ID: "n1", Title: in.Title}, nil
}
func (f *fakeClient) ListNotes(context.Context) ([]client.Note, error) {
	f.rotate()
	return f.notes, f.err
}
func (f *fakeClient) DeleteNote(_ context.Context, id string) error {
	f.rotate()
	f.deleted = id
	return f.err
}
func (f *fakeClient) Ping(context.Context) error       { return f.err }
func (f *fakeClient) SetTokens(access, refresh string) { f.access, f.refresh = access, refresh }
func (f *fakeClient) Tokens() (string, string)         { return f.access, f.refresh }

type memSessions struct {
	s       session.Session
	saves   int
	cleared bool
}

func (m *memSessions) Save(_ context.Context, s session.Session) error {
	m.s = s
	m.saves++
	return nil
}
func (m *memSessions) Load(context.Context) (session.Session, error) { return m.s, nil }
func (m *memSessions) Clear(context.Context) error {
	m.s = session.Session{}
	m.cleared = true
	return nil
}
func (m *memSessions) Close() error { return nil }

func newTestApp(t *testing.T, fc *fakeClient, ms *memSessions) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		config:   &config.Config{RequestTimeout: time.Second},
		client:   fc,
		sessions: ms,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
	}, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(*bufio.Reader, io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}
