package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and parseFlags.
const (
	FlagConfig            = "config"
	FlagStorageDriver     = "storage"
	FlagStoragePath       = "store-path"
	FlagDSN               = "dsn"
	FlagSyncFile          = "sync-file"
	FlagSyncInterval      = "sync-interval"
	FlagDigest            = "digest"
	FlagCipher            = "cipher"
	FlagMinPasswordLength = "min-password-length"
	FlagLogLevel          = "log-level"
	FlagLogPretty         = "log-pretty"
)

// RegisterFlags adds the configuration flags to fs. Defaults are left zero:
// real defaults live in [Defaults] so an unset flag never masks a value from
// the environment or the JSON file.
//
// Flags:
//
//	-c/--config            json file path with configs
//	--storage              store backend: file or sqlite
//	--store-path           path of the JSON document store
//	--dsn                  SQLite data source name
//	--sync-file            shared snapshot file for sync
//	--sync-interval        watch period (e.g. "30s", "1m")
//	--digest               login digest primitive
//	--cipher               export cipher
//	--min-password-length  minimum master password length
//	--log-level            log level
//	--log-pretty           human-readable logs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "path to a JSON config file")
	fs.String(FlagStorageDriver, "", "store backend: file or sqlite")
	fs.String(FlagStoragePath, "", "path of the JSON document store (\":memory:\" for none)")
	fs.String(FlagDSN, "", "SQLite data source name")
	fs.String(FlagSyncFile, "", "shared snapshot file used by sync")
	fs.Duration(FlagSyncInterval, 0, "sync --watch period")
	fs.String(FlagDigest, "", "login digest: argon2id, sha256 or fallback")
	fs.String(FlagCipher, "", "export cipher: aes-256-gcm, xsalsa20-poly1305 or xor-fallback")
	fs.Int(FlagMinPasswordLength, 0, "minimum master password length")
	fs.String(FlagLogLevel, "", "log level: trace, debug, info, warn, error, off")
	fs.Bool(FlagLogPretty, false, "human-readable log output")
}

// parseFlags builds a partial config from the flags of fs that were set on
// the command line.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	visit := func(name string, apply func() error) {
		if err != nil {
			return
		}
		if f := fs.Lookup(name); f != nil && f.Changed {
			if e := apply(); e != nil {
				err = fmt.Errorf("flag --%s: %w", name, e)
			}
		}
	}

	visit(FlagConfig, func() (e error) { cfg.JSONFilePath, e = fs.GetString(FlagConfig); return })
	visit(FlagStorageDriver, func() (e error) { cfg.Storage.Driver, e = fs.GetString(FlagStorageDriver); return })
	visit(FlagStoragePath, func() (e error) { cfg.Storage.File.Path, e = fs.GetString(FlagStoragePath); return })
	visit(FlagDSN, func() (e error) { cfg.Storage.DB.DSN, e = fs.GetString(FlagDSN); return })
	visit(FlagSyncFile, func() (e error) { cfg.Sync.File, e = fs.GetString(FlagSyncFile); return })
	visit(FlagSyncInterval, func() (e error) { cfg.Sync.Interval, e = fs.GetDuration(FlagSyncInterval); return })
	visit(FlagDigest, func() (e error) { cfg.App.DigestAlgorithm, e = fs.GetString(FlagDigest); return })
	visit(FlagCipher, func() (e error) { cfg.App.CipherAlgorithm, e = fs.GetString(FlagCipher); return })
	visit(FlagMinPasswordLength, func() (e error) { cfg.App.MinPasswordLength, e = fs.GetInt(FlagMinPasswordLength); return })
	visit(FlagLogLevel, func() (e error) { cfg.Log.Level, e = fs.GetString(FlagLogLevel); return })
	visit(FlagLogPretty, func() (e error) { cfg.Log.Pretty, e = fs.GetBool(FlagLogPretty); return })

	if err != nil {
		return nil, err
	}
	return cfg, nil
}
