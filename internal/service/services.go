package service

import (
	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
)

// Services bundles everything the front-end talks to. Session is exposed so
// the front-end can register lifecycle hooks and report activity.
type Services struct {
	Session           *session.Session
	GeneratorService  GeneratorService
	VaultService      VaultService
	AttachmentService AttachmentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	sess := session.New(SessionOptions(cfg.Vault), logger)
	deriver := crypto.NewArgon2Deriver(Argon2Params(cfg.Vault))
	cipher := crypto.NewFieldCipher()

	return &Services{
		Session:           sess,
		GeneratorService:  NewGeneratorService(cfg.Generator, logger),
		VaultService:      NewVaultService(storages, sess, deriver, cipher, cfg.Vault, logger),
		AttachmentService: NewAttachmentService(storages, sess, cipher, logger),
	}
}

// SessionOptions maps the vault timer settings onto the session, where zero
// disables a timer.
func SessionOptions(cfg config.Vault) session.Options {
	return session.Options{
		AutoLock:   config.Enabled(cfg.AutoLock),
		Warning:    config.Enabled(cfg.AutoLockWarning),
		Inactivity: config.Enabled(cfg.Inactivity),
	}
}

// Argon2Params maps the configured KDF cost onto the deriver parameters.
func Argon2Params(cfg config.Vault) crypto.Argon2Params {
	p := crypto.DefaultArgon2Params()
	if cfg.Argon2Time > 0 {
		p.Time = cfg.Argon2Time
	}
	if cfg.Argon2MemoryKiB > 0 {
		p.MemoryKiB = cfg.Argon2MemoryKiB
	}
	if cfg.Argon2Threads > 0 {
		p.Threads = cfg.Argon2Threads
	}
	return p
}
