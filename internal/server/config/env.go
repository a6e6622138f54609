package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "GOPHNOTES_"

// parseEnv applies GOPHNOTES_* variables. Durations use Go syntax ("15m").
func parseEnv(c *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ADDRESS":             &c.EndpointAddrGRPC,
		"STORAGE_BACKEND":     &c.StorageBackend,
		"DATABASE_DSN":        &c.DatabaseDSN,
		"MONGO_URI":           &c.MongoURI,
		"MONGO_DATABASE":      &c.MongoDatabase,
		"REFRESH_TOKEN_STORE": &c.RefreshTokenStore,
		"REDIS_ADDR":          &c.RedisAddr,
		"REDIS_PASSWORD":      &c.RedisPassword,
		"NOTES_STORE":         &c.NotesStore,
		"S3_ROOT_USER":        &c.S3RootUser,
		"S3_ROOT_PASSWORD":    &c.S3RootPassword,
		"S3_BUCKET":           &c.S3Bucket,
		"S3_REGION":           &c.S3Region,
		"S3_BASE_ENDPOINT":    &c.S3BaseEndpoint,
		"SECRET_KEY":          &c.SecretKey,
		"PASSWORD_HASH":       &c.PasswordHashAlgorithm,
	}
	for name, dst := range strs {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REDIS_DB":    &c.RedisDB,
		"BCRYPT_COST": &c.BcryptCost,
	}
	for name, dst := range ints {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &c.AccessTokenValidityDuration,
		"REFRESH_TOKEN_TTL": &c.RefreshTokenValidityDuration,
	}
	for name, dst := range durations {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = d
	}
	return nil
}
