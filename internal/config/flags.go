package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the global configuration flags from args and returns
// the remaining arguments (the subcommand and its flags).
//
// Flags:
//
//	-c/-config json file path with configs
//	-env-file dotenv file path
//	-d vault DSN (":memory:", a .json file or a SQLite file)
//	-attachments bbolt attachments file
//	-lock-file process lock file
//	-log-file log file for the interactive front-end
//	-log-level minimum log level
//	-auto-lock absolute session lifetime (e.g., "5m")
//	-inactivity inactivity lock (e.g., "90s")
//	-length default generated password length
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var jsonConfigPath string
	var envFilePath string
	var dsn string
	var attachmentsPath string
	var lockFile string
	var logFile string
	var logLevel string
	var autoLock time.Duration
	var inactivity time.Duration
	var length int

	fs := flag.NewFlagSet("mempass", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "dotenv file path")
	fs.StringVar(&dsn, "d", "", "Vault DSN")
	fs.StringVar(&attachmentsPath, "attachments", "", "Attachments bbolt file")
	fs.StringVar(&lockFile, "lock-file", "", "Process lock file")
	fs.StringVar(&logFile, "log-file", "", "Log file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Auto-lock after unlock (e.g., 5m)")
	fs.DurationVar(&inactivity, "inactivity", 0, "Inactivity lock (e.g., 90s)")
	fs.IntVar(&length, "length", 0, "Default generated password length")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DSN:             dsn,
			AttachmentsPath: attachmentsPath,
			LockFile:        lockFile,
		},
		Vault: Vault{
			AutoLock:   autoLock,
			Inactivity: inactivity,
		},
		Generator: Generator{
			DefaultLength: length,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, fs.Args(), nil
}
