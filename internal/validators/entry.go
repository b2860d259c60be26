package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-mempass/models"
)

// Field names accepted by [EntryValidator.Validate].
const (
	FieldService  = "service"
	FieldPassword = "password"
	FieldVersion  = "version"
	FieldName     = "name"
	FieldSize     = "size"
	FieldEntryID  = "entry_id"
)

// EntryValidator validates new entries, entry updates and attachments.
type EntryValidator struct {
	maxAttachmentSize int
}

// NewEntryValidator returns a Validator that rejects attachments larger than
// maxAttachmentSize bytes. Zero disables the size check.
func NewEntryValidator(maxAttachmentSize int) Validator {
	return &EntryValidator{maxAttachmentSize: maxAttachmentSize}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewEntry:
		return v.validateNewEntry(value, fields...)
	case *models.NewEntry:
		return v.validateNewEntry(*value, fields...)

	case models.EntryUpdate:
		return v.validateUpdate(value, fields...)
	case *models.EntryUpdate:
		return v.validateUpdate(*value, fields...)

	case models.Attachment:
		return v.validateAttachment(value, fields...)
	case *models.Attachment:
		return v.validateAttachment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNewEntry leaves a zero version alone: it means "first version".
func (v *EntryValidator) validateNewEntry(e models.NewEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldPassword, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldService:
			if strings.TrimSpace(e.Service) == "" {
				return ErrEmptyService
			}
		case FieldPassword:
			if e.Password == "" {
				return ErrEmptyPassword
			}
		case FieldVersion:
			if e.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate only checks the fields the update sets.
func (v *EntryValidator) validateUpdate(u models.EntryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldPassword, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldService:
			if u.Service != nil && strings.TrimSpace(*u.Service) == "" {
				return ErrEmptyService
			}
		case FieldPassword:
			if u.Password != nil && *u.Password == "" {
				return ErrEmptyPassword
			}
		case FieldVersion:
			if u.Version != nil && *u.Version < 1 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateAttachment(a models.Attachment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldName, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if a.EntryID == "" {
				return ErrEmptyAttachment
			}
		case FieldName:
			if a.Name == "" || a.Name == "." || a.Name == string(filepath.Separator) || filepath.Base(a.Name) != a.Name {
				return ErrEmptyFileName
			}
		case FieldSize:
			if v.maxAttachmentSize > 0 && a.Size > v.maxAttachmentSize {
				return fmt.Errorf("%w: %d bytes, the limit is %d", ErrFileTooLarge, a.Size, v.maxAttachmentSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
