// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TEAMVAULT_"

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - validate:  go-playground rules checked after merging.
type StructuredConfig struct {
	// App holds the cryptographic and account policy settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the record store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync configures the shared snapshot file used by `sync`.
	Sync Sync `envPrefix:"SYNC_"`

	// Log configures the CLI logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: TEAMVAULT_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that shape how secrets are hashed and sealed.
type App struct {
	// DigestAlgorithm is the preferred login digest primitive.
	// Env: TEAMVAULT_APP_DIGEST_ALGORITHM
	DigestAlgorithm string `env:"DIGEST_ALGORITHM" validate:"oneof=argon2id sha256 fallback"`

	// CipherAlgorithm is used for encrypted exports.
	// Env: TEAMVAULT_APP_CIPHER_ALGORITHM
	CipherAlgorithm string `env:"CIPHER_ALGORITHM" validate:"oneof=aes-256-gcm xsalsa20-poly1305 xor-fallback"`

	// MinPasswordLength is the shortest master password accepted at
	// registration.
	// Env: TEAMVAULT_APP_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" validate:"min=1"`

	// Argon2 tunes key derivation.
	Argon2 Argon2 `envPrefix:"ARGON2_"`
}

// Argon2 holds Argon2id cost parameters.
type Argon2 struct {
	Time      uint32 `env:"TIME" validate:"min=1"`
	MemoryKiB uint32 `env:"MEMORY_KIB" validate:"min=8"`
	Threads   uint8  `env:"THREADS" validate:"min=1"`
}

// Storage configures the record store.
type Storage struct {
	// Driver is "file" (JSON document) or "sqlite".
	// Env: TEAMVAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER" validate:"oneof=file sqlite"`

	// File holds the JSON document store settings.
	File File `envPrefix:"FILE_"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// File holds settings for the JSON document store.
type File struct {
	// Path of the store document, or ":memory:".
	// Env: TEAMVAULT_STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the go-sqlite3 data source name, usually a file path.
	// Env: TEAMVAULT_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync configures file-based synchronization.
type Sync struct {
	// File is the shared snapshot path. Empty disables sync.
	// Env: TEAMVAULT_SYNC_FILE
	File string `env:"FILE"`

	// Interval is the polling period of `sync --watch`.
	// Env: TEAMVAULT_SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL" validate:"gt=0"`
}

// Log configures logging.
type Log struct {
	// Level: trace, debug, info, warn, error or off.
	// Env: TEAMVAULT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Pretty switches to human-readable console output.
	// Env: TEAMVAULT_LOG_PRETTY
	Pretty bool `env:"PRETTY"`
}

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	dir := defaultDataDir()
	return &StructuredConfig{
		App: App{
			DigestAlgorithm:   "argon2id",
			CipherAlgorithm:   "aes-256-gcm",
			MinPasswordLength: 8,
			Argon2: Argon2{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   4,
			},
		},
		Storage: Storage{
			Driver: DriverFile,
			File:   File{Path: filepath.Join(dir, "vault.json")},
			DB:     DB{DSN: filepath.Join(dir, "vault.db")},
		},
		Sync: Sync{Interval: 30 * time.Second},
		Log:  Log{Level: "warn"},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "teamvault")
	}
	return ".teamvault"
}

// GetStructuredConfig loads, merges, and validates the configuration.
// fs must already be parsed; only flags the user actually set are applied.
// A nil fs skips the flag layer.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
