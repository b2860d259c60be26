package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogFile  string `json:"log_file"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN             string `json:"dsn"`
		AttachmentsPath string `json:"attachments_path"`
		LockFile        string `json:"lock_file"`
	} `json:"storage,omitempty"`

	Vault struct {
		PinLength               int      `json:"pin_length"`
		MaxAttempts             int      `json:"max_attempts"`
		LockoutDuration         Duration `json:"lockout_duration"`
		AutoLock                Duration `json:"auto_lock"`
		AutoLockWarning         Duration `json:"auto_lock_warning"`
		Inactivity              Duration `json:"inactivity"`
		BackupReminder          Duration `json:"backup_reminder"`
		Argon2Time              uint32   `json:"argon2_time"`
		Argon2MemoryKiB         uint32   `json:"argon2_memory_kib"`
		Argon2Threads           uint8    `json:"argon2_threads"`
		ExportIterations        int      `json:"export_iterations"`
		ExportMinPasswordLength int      `json:"export_min_password_length"`
	} `json:"vault,omitempty"`

	Generator struct {
		DefaultLength int `json:"default_length"`
		MinLength     int `json:"min_length"`
		MaxLength     int `json:"max_length"`
	} `json:"generator,omitempty"`
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

	v := jsonCfg.Vault
	cfg := &StructuredConfig{
		App: App{
			LogFile:  jsonCfg.App.LogFile,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DSN:             jsonCfg.Storage.DSN,
			AttachmentsPath: jsonCfg.Storage.AttachmentsPath,
			LockFile:        jsonCfg.Storage.LockFile,
		},
		Vault: Vault{
			PinLength:               v.PinLength,
			MaxAttempts:             v.MaxAttempts,
			LockoutDuration:         time.Duration(v.LockoutDuration),
			AutoLock:                time.Duration(v.AutoLock),
			AutoLockWarning:         time.Duration(v.AutoLockWarning),
			Inactivity:              time.Duration(v.Inactivity),
			BackupReminder:          time.Duration(v.BackupReminder),
			Argon2Time:              v.Argon2Time,
			Argon2MemoryKiB:         v.Argon2MemoryKiB,
			Argon2Threads:           v.Argon2Threads,
			ExportIterations:        v.ExportIterations,
			ExportMinPasswordLength: v.ExportMinPasswordLength,
		},
		Generator: Generator{
			DefaultLength: jsonCfg.Generator.DefaultLength,
			MinLength:     jsonCfg.Generator.MinLength,
			MaxLength:     jsonCfg.Generator.MaxLength,
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
