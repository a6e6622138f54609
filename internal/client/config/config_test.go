package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load([]string{"notes", "list", "-t", "tok"}, noEnv)
	require.NoError(t, err)

	want := &Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 10 * time.Second, SessionPath: "gophnotes-session.db"}
	assert.Empty(t, cmp.Diff(want, cfg))
	assert.Equal(t, []string{"notes", "list", "-t", "tok"}, rest)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"json:1","request_timeout":"3s"}`), 0o600))

	env := func(k string) (string, bool) {
		if k == "GOPHNOTES_SERVER_ADDR" {
			return "env:2", true
		}
		return "", false
	}

	cfg, rest, err := Load([]string{"-c", path, "login", "-e", "a@b.c"}, env)
	require.NoError(t, err)
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"login", "-e", "a@b.c"}, rest)

	cfg, _, err = Load([]string{"-c", path, "-a", "flag:3", "-w", "1s", "-s", "/tmp/s.db", "login"}, env)
	require.NoError(t, err)
	assert.Equal(t, "flag:3", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/s.db", cfg.SessionPath)
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := Load([]string{"-c", filepath.Join(t.TempDir(), "none.json")}, noEnv)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2`), 0o600))
	_, _, err = Load([]string{"-c", bad}, noEnv)
	assert.Error(t, err)

	_, _, err = Load([]string{"-w", "forever"}, noEnv)
	assert.Error(t, err)
}
