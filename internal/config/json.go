package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		DigestAlgorithm   string `json:"digest_algorithm"`
		CipherAlgorithm   string `json:"cipher_algorithm"`
		MinPasswordLength int    `json:"min_password_length"`
		Argon2            struct {
			Time      uint32 `json:"time"`
			MemoryKiB uint32 `json:"memory_kib"`
			Threads   uint8  `json:"threads"`
		} `json:"argon2"`
	} `json:"app"`

	Storage struct {
		Driver string `json:"driver"`
		File   struct {
			Path string `json:"path"`
		} `json:"file"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Sync struct {
		File     string   `json:"file"`
		Interval Duration `json:"interval"`
	} `json:"sync"`

	Log struct {
		Level  string `json:"level"`
		Pretty bool   `json:"pretty"`
	} `json:"log"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DigestAlgorithm:   jsonCfg.App.DigestAlgorithm,
			CipherAlgorithm:   jsonCfg.App.CipherAlgorithm,
			MinPasswordLength: jsonCfg.App.MinPasswordLength,
			Argon2: Argon2{
				Time:      jsonCfg.App.Argon2.Time,
				MemoryKiB: jsonCfg.App.Argon2.MemoryKiB,
				Threads:   jsonCfg.App.Argon2.Threads,
			},
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			File:   File{Path: jsonCfg.Storage.File.Path},
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Sync: Sync{
			File:     jsonCfg.Sync.File,
			Interval: time.Duration(jsonCfg.Sync.Interval),
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Pretty: jsonCfg.Log.Pretty,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
