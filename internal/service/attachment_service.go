// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
	"github.com/MKhiriev/go-mempass/internal/utils"
	"github.com/MKhiriev/go-mempass/internal/validators"
	"github.com/MKhiriev/go-mempass/models"
)

// MaxAttachmentSize is the largest file Attach accepts.
const MaxAttachmentSize = 10 << 20

// attachmentService is the concrete implementation of AttachmentService. It
// borrows the vault key from the session like the entry operations do.
type attachmentService struct {
	attachments store.AttachmentStorage
	entries     store.EntryRepository
	session     *session.Session
	cipher      crypto.FieldCipher
	validator   validators.Validator
	ids         *utils.UUIDGenerator
	now         func() time.Time
	logger      *logger.Logger
}

func NewAttachmentService(storages *store.Storages, sess *session.Session, cipher crypto.FieldCipher, log *logger.Logger) AttachmentService {
	if log == nil {
		log = logger.Nop()
	}
	return &attachmentService{
		attachments: storages.Attachments,
		entries:     storages.Vault,
		session:     sess,
		cipher:      cipher,
		validator:   validators.NewEntryValidator(MaxAttachmentSize),
		ids:         utils.NewUUIDGenerator(),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      log,
	}
}

// Attach implements AttachmentService. Only the base name of name is kept.
func (a *attachmentService) Attach(ctx context.Context, entryID models.EntryID, name string, data []byte) (models.Attachment, error) {
	entryID = models.NormalizeEntryID(entryID.String())
	name = strings.TrimSpace(filepath.Base(name))
	if err := a.validator.Validate(ctx, models.Attachment{EntryID: entryID, Name: name, Size: len(data)}); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrInvalidAttachment, err)
	}

	var att models.Attachment
	err := a.session.WithKey(func(key *crypto.Key) error {
		a.session.Touch()

		if _, err := a.entries.GetEntry(ctx, entryID); err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("get entry: %w", err)
		}

		blob, err := a.cipher.EncryptBytes(key, data)
		if err != nil {
			return fmt.Errorf("encrypt attachment: %w", err)
		}

		att = models.Attachment{
			ID:      a.ids.Generate(),
			EntryID: entryID,
			Name:    name,
			Size:    len(data),
			Created: a.now(),
			Blob:    blob,
		}
		if err = a.attachments.PutAttachment(ctx, att); err != nil {
			return fmt.Errorf("save attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "attachmentService.Attach").Msg("attach failed")
		return models.Attachment{}, err
	}
	return att, nil
}

// Open implements AttachmentService.
func (a *attachmentService) Open(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := a.session.WithKey(func(key *crypto.Key) error {
		a.session.Touch()

		att, err := a.attachments.GetAttachment(ctx, id)
		if errors.Is(err, store.ErrAttachmentNotFound) {
			return ErrAttachmentNotFound
		}
		if err != nil {
			return fmt.Errorf("get attachment: %w", err)
		}

		data, err = a.cipher.DecryptBytes(key, &att.Blob)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// List implements AttachmentService.
func (a *attachmentService) List(ctx context.Context, entryID models.EntryID) ([]models.Attachment, error) {
	if !a.session.IsUnlocked() {
		return nil, session.ErrVaultLocked
	}

	list, err := a.attachments.ListAttachments(ctx, models.NormalizeEntryID(entryID.String()))
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return list, nil
}

// Remove implements AttachmentService.
func (a *attachmentService) Remove(ctx context.Context, id string) error {
	return a.session.WithKey(func(_ *crypto.Key) error {
		err := a.attachments.DeleteAttachment(ctx, id)
		if errors.Is(err, store.ErrAttachmentNotFound) {
			return ErrAttachmentNotFound
		}
		if err != nil {
			return fmt.Errorf("delete attachment: %w", err)
		}
		return nil
	})
}
