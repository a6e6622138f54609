// Package config holds client settings: the server address, the
// per-request timeout and where the login session is kept.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/timex"
)

type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionPath        string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionPath = "gophnotes-session.db"
}

type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionPath        string         `json:"session_path"`
}

// Load parses the global flags in front of the command and returns the
// rest. Order: defaults, JSON file (-c), GOPHNOTES_SERVER_ADDR, flags
// (-a address, -w timeout, -s session file).
func Load(args []string, lookup func(string) (string, bool)) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	var (
		path    string
		addr    string
		session string
		timeout time.Duration
	)
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "c", "", "path to JSON config file")
	fs.StringVar(&addr, "a", "", "address and port of the server")
	fs.DurationVar(&timeout, "w", 0, "request timeout")
	fs.StringVar(&session, "s", "", "session database file")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if path != "" {
		if err := parseJson(cfg, path); err != nil {
			return nil, nil, err
		}
	}
	if v, ok := lookup("GOPHNOTES_SERVER_ADDR"); ok {
		cfg.ServerEndpointAddr = v
	}
	if addr != "" {
		cfg.ServerEndpointAddr = addr
	}
	if timeout > 0 {
		cfg.RequestTimeout = timeout
	}
	if session != "" {
		cfg.SessionPath = session
	}
	return cfg, fs.Args(), nil
}

// LoadConfig reads os.Args and the process environment.
func LoadConfig() (*Config, []string, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

func parseJson(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		RequestTimeout:     timex.Duration{Duration: cfg.RequestTimeout},
		SessionPath:        cfg.SessionPath,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.SessionPath = jc.SessionPath
	return nil
}
