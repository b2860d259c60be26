package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/kdbx"
	"github.com/MKhiriev/go-mempass/internal/prompt"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/models"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatKDBX = "kdbx"
)

// resetConfirmation must be typed to erase the vault without -force.
const resetConfirmation = "erase"

var (
	promptFromEnv = prompt.FromEnv
	wipe          = crypto.WipeBytes
)

// ErrUnknownFormat is returned for an export format other than json or kdbx.
var ErrUnknownFormat = errors.New("unknown export format")

type GenerateOptions struct {
	Service string
	Version int
	Length  int
	// Copy puts the password on the clipboard instead of printing it.
	Copy bool
}

// Generate derives a password for opts.Service from the master phrase.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	phrase, err := a.secret(EnvPhrase, "Master phrase: ")
	if err != nil {
		return err
	}
	defer wipe(phrase)

	password, err := a.generator.Generate(ctx, models.GenerateRequest{
		Phrase:  string(phrase),
		Service: models.ServiceIdentity{Name: opts.Service, Version: opts.Version},
		Length:  opts.Length,
	})
	if err != nil {
		return err
	}

	if opts.Copy {
		if err = a.copy(password); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "Password copied to clipboard.")
		return nil
	}

	fmt.Fprintln(a.out, password)
	return nil
}

// Strength prints the estimate for password, asking for it when empty.
func (a *App) Strength(password string) error {
	if password == "" {
		secret, err := a.prompt.ReadSecret("Password: ")
		if err != nil {
			return err
		}
		defer wipe(secret)
		password = string(secret)
	}

	s := a.generator.EstimateStrength(password)
	fmt.Fprintf(a.out, "Score: %d/100, cracked in %s\n", s.Score, s.ReadableTime)
	return nil
}

type ExportOptions struct {
	Path   string
	Format string
}

// Export unlocks the vault and writes every readable entry to opts.Path,
// sealed with an export password.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatKDBX {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	if err := a.unlock(ctx); err != nil {
		return err
	}
	defer a.vault.Lock()

	password := promptFromEnv(EnvExportPassword)
	if password == nil {
		var err error
		password, err = a.prompt.ReadConfirmed("Export password: ", "Repeat export password: ")
		if err != nil {
			return err
		}
	}
	defer wipe(password)

	if format == FormatKDBX {
		entries, err := a.vault.ListEntries(ctx)
		if err != nil {
			return err
		}
		n, err := kdbx.WriteFile(opts.Path, entries, string(password))
		if err != nil {
			return err
		}
		a.logger.Info().Str("func", "App.Export").Int("entries", n).Msg("kdbx export written")
		fmt.Fprintf(a.out, "Exported %d entries to %s\n", n, opts.Path)
		return nil
	}

	bundle, err := a.vault.Export(ctx, string(password))
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err = os.WriteFile(opts.Path, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(a.out, "Vault exported to %s\n", opts.Path)
	return nil
}

// Import replaces the vault entries with the contents of the export at path.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}

	var bundle models.ExportBundle
	if err = json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("%w: %v", service.ErrExportFormat, err)
	}

	if err = a.unlock(ctx); err != nil {
		return err
	}
	defer a.vault.Lock()

	var password []byte
	if bundle.Encrypted {
		password, err = a.secret(EnvExportPassword, "Export password: ")
		if err != nil {
			return err
		}
		defer wipe(password)
	}

	n, err := a.vault.Import(ctx, bundle, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d entries.\n", n)
	return nil
}

// Reset erases the vault. Unless force is set the user has to type the
// confirmation word.
func (a *App) Reset(ctx context.Context, force bool) error {
	if a.vault == nil {
		return errors.New("client: vault service is required")
	}

	if !force {
		answer, err := a.prompt.ReadLine(fmt.Sprintf("This deletes every entry. Type %q to continue: ", resetConfirmation))
		if err != nil {
			return err
		}
		if answer != resetConfirmation {
			return context.Canceled
		}
	}

	if err := a.vault.ResetPin(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Vault erased.")
	return nil
}
