package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-mempass/internal/app"
	"github.com/MKhiriev/go-mempass/internal/client"
	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/prompt"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/internal/store"
	"github.com/MKhiriev/go-mempass/internal/tui"
	"github.com/MKhiriev/go-mempass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: mempass [global flags] <command> [flags]

commands:
  tui                      interactive vault (default)
  generate -s <service>    derive a password from the master phrase
  strength [password]      estimate password strength
  export -o <file>         write a password-protected backup (-format json|kdbx)
  import -i <file>         replace the vault entries with a backup
  reset                    erase the vault
  version                  print build information
`

func main() {
	memguard.CatchInterrupt()

	code := run(os.Args[1:])
	memguard.Purge()
	os.Exit(code)
}

func run(args []string) int {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, rest, err := config.GetStructuredConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mempass:", err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	command := "tui"
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}
	if command == "version" {
		fmt.Println(buildInfo.String())
		return 0
	}

	log, closeLog, err := logger.NewFileLogger("mempass", cfg.App.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mempass:", err)
		return 1
	}
	defer closeLog()
	log = log.WithLevel(cfg.App.LogLevel)

	// SIGINT belongs to memguard, which wipes key material before exiting
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	log.Debug().Str("command", command).Str("version", buildInfo.Version).Msg("starting")

	if err = dispatch(ctx, command, rest, cfg, buildInfo, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Err(err).Str("command", command).Msg("command failed")
		fmt.Fprintln(os.Stderr, "mempass:", app.UserMessage(err))
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, command string, args []string, cfg *config.StructuredConfig, buildInfo models.BuildInfo, log *logger.Logger) error {
	fs := flag.NewFlagSet("mempass "+command, flag.ContinueOnError)

	switch command {
	case "generate":
		var opts client.GenerateOptions
		fs.StringVar(&opts.Service, "s", "", "service name")
		fs.IntVar(&opts.Version, "v", 1, "service version, bump it to rotate the password")
		fs.IntVar(&opts.Length, "l", cfg.Generator.DefaultLength, "password length")
		fs.BoolVar(&opts.Copy, "copy", false, "copy to the clipboard instead of printing")
		if err := fs.Parse(args); err != nil {
			return err
		}

		// generating never touches the vault
		a, err := client.NewApp(&service.Services{GeneratorService: service.NewGeneratorService(cfg.Generator, log)}, nil, prompt.New(), log)
		if err != nil {
			return err
		}
		return a.Generate(ctx, opts)

	case "strength":
		if err := fs.Parse(args); err != nil {
			return err
		}
		a, err := client.NewApp(&service.Services{GeneratorService: service.NewGeneratorService(cfg.Generator, log)}, nil, prompt.New(), log)
		if err != nil {
			return err
		}
		return a.Strength(fs.Arg(0))
	}

	var (
		action func(a *client.App) error
		force  bool
		opts   client.ExportOptions
		input  string
	)

	switch command {
	case "tui":
		action = func(a *client.App) error { return a.Run(ctx) }
	case "export":
		fs.StringVar(&opts.Path, "o", "mempass-export.json", "output file")
		fs.StringVar(&opts.Format, "format", client.FormatJSON, "json or kdbx")
		action = func(a *client.App) error { return a.Export(ctx, opts) }
	case "import":
		fs.StringVar(&input, "i", "", "export file to import")
		action = func(a *client.App) error {
			if input == "" {
				return errors.New("import: -i is required")
			}
			return a.Import(ctx, input)
		}
	case "reset":
		fs.BoolVar(&force, "force", false, "skip the confirmation")
		action = func(a *client.App) error { return a.Reset(ctx, force) }
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Err(cerr).Msg("closing storages failed")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	var ui client.UI
	if command == "tui" {
		if ui, err = tui.New(services, *cfg, buildInfo, log); err != nil {
			return err
		}
	}

	a, err := client.NewApp(services, ui, prompt.New(), log)
	if err != nil {
		return err
	}
	return action(a)
}
