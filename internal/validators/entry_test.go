package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mempass/models"
)

func ptr[T any](v T) *T { return &v }

// ── new entries ──────────────────────────────────────────────────────────────

func TestEntryValidator_NewEntry(t *testing.T) {
	v := NewEntryValidator(1024)
	require.NotNil(t, v)

	tests := []struct {
		name    string
		entry   models.NewEntry
		fields  []string
		wantErr error
	}{
		{name: "valid", entry: models.NewEntry{Service: "github", Password: "pw"}},
		{name: "explicit version", entry: models.NewEntry{Service: "github", Password: "pw", Version: 3}},
		{name: "blank service", entry: models.NewEntry{Service: "  ", Password: "pw"}, wantErr: ErrEmptyService},
		{name: "empty password", entry: models.NewEntry{Service: "github"}, wantErr: ErrEmptyPassword},
		{name: "negative version", entry: models.NewEntry{Service: "github", Password: "pw", Version: -1}, wantErr: ErrInvalidVersion},
		{name: "scoped to service", entry: models.NewEntry{Service: "github"}, fields: []string{FieldService}},
		{name: "unknown field", entry: models.NewEntry{Service: "github", Password: "pw"}, fields: []string{"hash"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.entry, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)

			// pointers are accepted too
			assert.NoError(t, v.Validate(context.Background(), &tt.entry, tt.fields...))
		})
	}
}

// ── updates ──────────────────────────────────────────────────────────────────

func TestEntryValidator_Update(t *testing.T) {
	v := NewEntryValidator(0)

	tests := []struct {
		name    string
		update  models.EntryUpdate
		wantErr error
	}{
		{name: "empty update", update: models.EntryUpdate{}},
		{name: "favorite only", update: models.EntryUpdate{Favorite: ptr(true)}},
		{name: "new password", update: models.EntryUpdate{Password: ptr("new")}},
		{name: "cleared username", update: models.EntryUpdate{Username: ptr("")}},
		{name: "blank service", update: models.EntryUpdate{Service: ptr(" ")}, wantErr: ErrEmptyService},
		{name: "empty password", update: models.EntryUpdate{Password: ptr("")}, wantErr: ErrEmptyPassword},
		{name: "zero version", update: models.EntryUpdate{Version: ptr(0)}, wantErr: ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── attachments ──────────────────────────────────────────────────────────────

func TestEntryValidator_Attachment(t *testing.T) {
	v := NewEntryValidator(10)

	tests := []struct {
		name    string
		att     models.Attachment
		wantErr error
	}{
		{name: "valid", att: models.Attachment{EntryID: "e1", Name: "id_ed25519", Size: 10}},
		{name: "empty file", att: models.Attachment{EntryID: "e1", Name: "empty.txt"}},
		{name: "no entry", att: models.Attachment{Name: "a.txt", Size: 1}, wantErr: ErrEmptyAttachment},
		{name: "no name", att: models.Attachment{EntryID: "e1", Size: 1}, wantErr: ErrEmptyFileName},
		{name: "dot", att: models.Attachment{EntryID: "e1", Name: ".", Size: 1}, wantErr: ErrEmptyFileName},
		{name: "path", att: models.Attachment{EntryID: "e1", Name: "keys/id_rsa", Size: 1}, wantErr: ErrEmptyFileName},
		{name: "too large", att: models.Attachment{EntryID: "e1", Name: "big.bin", Size: 11}, wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.att)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEntryValidator_UnsupportedType(t *testing.T) {
	v := NewEntryValidator(0)

	assert.ErrorIs(t, v.Validate(context.Background(), "github"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PlainEntry{}), ErrUnsupportedType)
}
