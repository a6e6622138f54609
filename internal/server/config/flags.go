package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
)

var knownFlags = []string{"-a", "-k", "-d", "-m", "-n", "-x", "-l", "-o", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-h"}

// parseFlags applies command-line flags.
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-k string   storage backend: postgres, mongo or memory
//	-d string   PostgreSQL DSN
//	-m string   MongoDB URI
//	-n string   MongoDB database name
//	-x string   refresh token store: db or redis
//	-l string   Redis address
//	-o string   notes store: db or s3
//	-s string   JWT HMAC secret key, base64
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-h string   password hash algorithm: bcrypt or argon2id
//
// Only the flags listed above are parsed, so -c/-config and flags of other
// components pass through untouched.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.StorageBackend, "k", config.StorageBackend, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database")
	fs.StringVar(&config.RefreshTokenStore, "x", config.RefreshTokenStore, "refresh token store")
	fs.StringVar(&config.RedisAddr, "l", config.RedisAddr, "Redis address")
	fs.StringVar(&config.NotesStore, "o", config.NotesStore, "notes store")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key (base64)")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.PasswordHashAlgorithm, "h", config.PasswordHashAlgorithm, "password hash algorithm")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	// Sub-minute lifetimes set by JSON or env survive when -t/-r are absent.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
		}
	})
	return nil
}
