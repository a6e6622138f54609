package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "15m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	StorageBackend               string         `json:"storage_backend"`
	DatabaseDSN                  string         `json:"database_dsn"`
	MongoURI                     string         `json:"mongo_uri"`
	MongoDatabase                string         `json:"mongo_database"`
	RefreshTokenStore            string         `json:"refresh_token_store"`
	RedisAddr                    string         `json:"redis_addr"`
	RedisPassword                string         `json:"redis_password"`
	RedisDB                      int            `json:"redis_db"`
	NotesStore                   string         `json:"notes_store"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	PasswordHashAlgorithm        string         `json:"password_hash_algorithm"`
	BcryptCost                   int            `json:"bcrypt_cost"`
}

// parseJson overlays the file at path onto config. Keys absent from the
// file keep their current values.
func parseJson(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		EndpointAddrGRPC:             config.EndpointAddrGRPC,
		StorageBackend:               config.StorageBackend,
		DatabaseDSN:                  config.DatabaseDSN,
		MongoURI:                     config.MongoURI,
		MongoDatabase:                config.MongoDatabase,
		RefreshTokenStore:            config.RefreshTokenStore,
		RedisAddr:                    config.RedisAddr,
		RedisPassword:                config.RedisPassword,
		RedisDB:                      config.RedisDB,
		NotesStore:                   config.NotesStore,
		S3RootUser:                   config.S3RootUser,
		S3RootPassword:               config.S3RootPassword,
		S3Bucket:                     config.S3Bucket,
		S3Region:                     config.S3Region,
		S3BaseEndpoint:               config.S3BaseEndpoint,
		SecretKey:                    config.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: config.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: config.RefreshTokenValidityDuration},
		PasswordHashAlgorithm:        config.PasswordHashAlgorithm,
		BcryptCost:                   config.BcryptCost,
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.StorageBackend = c.StorageBackend
	config.DatabaseDSN = c.DatabaseDSN
	config.MongoURI = c.MongoURI
	config.MongoDatabase = c.MongoDatabase
	config.RefreshTokenStore = c.RefreshTokenStore
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.RedisDB = c.RedisDB
	config.NotesStore = c.NotesStore
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.PasswordHashAlgorithm = c.PasswordHashAlgorithm
	config.BcryptCost = c.BcryptCost
	return nil
}
