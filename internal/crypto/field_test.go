package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-mempass/models"
)

func newTestKey(t *testing.T, fill byte) *Key {
	t.Helper()
	return NewKey(bytes.Repeat([]byte{fill}, 32))
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x11)

	for _, text := range []string{"hello", "", "пароль", string(bytes.Repeat([]byte("x"), 4096))} {
		field, err := c.EncryptField(key, text)
		if err != nil {
			t.Fatalf("EncryptField(%q) error: %v", text, err)
		}
		got, err := c.DecryptField(key, &field)
		if err != nil {
			t.Fatalf("DecryptField error: %v", err)
		}
		if got != text {
			t.Fatalf("round trip = %q, want %q", got, text)
		}
	}
}

func TestFieldCipher_PartSizes(t *testing.T) {
	field, err := NewFieldCipher().EncryptField(newTestKey(t, 0x01), "hello")
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	iv, _ := base64.StdEncoding.DecodeString(field.IV)
	tag, _ := base64.StdEncoding.DecodeString(field.Tag)
	ct, _ := base64.StdEncoding.DecodeString(field.CT)

	if len(iv) != IVSize {
		t.Fatalf("iv length = %d, want %d", len(iv), IVSize)
	}
	if len(tag) != TagSize {
		t.Fatalf("tag length = %d, want %d", len(tag), TagSize)
	}
	if len(ct) != len("hello") {
		t.Fatalf("ct length = %d, want %d", len(ct), len("hello"))
	}
}

func TestFieldCipher_FreshIVPerCall(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x02)

	a, _ := c.EncryptField(key, "same")
	b, _ := c.EncryptField(key, "same")
	if a.IV == b.IV {
		t.Fatal("expected a fresh IV for every encryption")
	}
	if a.CT == b.CT {
		t.Fatal("expected different ciphertexts for different IVs")
	}
}

func TestFieldCipher_WrongKey(t *testing.T) {
	c := NewFieldCipher()
	field, _ := c.EncryptField(newTestKey(t, 0x03), "hello")

	_, err := c.DecryptField(newTestKey(t, 0x04), &field)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
	if !errors.Is(err, ErrCrypto) {
		t.Fatalf("expected error to wrap ErrCrypto, got %v", err)
	}
}

func TestFieldCipher_TamperDetection(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x05)
	field, _ := c.EncryptField(key, "tamper me")

	flipEveryBit := func(part string, set func(f *models.EncryptedField, v string)) {
		raw, _ := base64.StdEncoding.DecodeString(part)
		for i := 0; i < len(raw)*8; i++ {
			mutated := bytes.Clone(raw)
			mutated[i/8] ^= 1 << (i % 8)

			f := field
			set(&f, base64.StdEncoding.EncodeToString(mutated))

			got, err := c.DecryptField(key, &f)
			if err == nil {
				t.Fatalf("bit %d flip accepted, got plaintext %q", i, got)
			}
			if got != "" {
				t.Fatalf("bit %d flip returned partial plaintext %q", i, got)
			}
		}
	}

	flipEveryBit(field.CT, func(f *models.EncryptedField, v string) { f.CT = v })
	flipEveryBit(field.Tag, func(f *models.EncryptedField, v string) { f.Tag = v })
	flipEveryBit(field.IV, func(f *models.EncryptedField, v string) { f.IV = v })
}

func TestFieldCipher_Malformed(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x06)
	good, _ := c.EncryptField(key, "hello")

	tests := []struct {
		name  string
		field *models.EncryptedField
	}{
		{"nil", nil},
		{"missing iv", &models.EncryptedField{CT: good.CT, Tag: good.Tag}},
		{"missing tag", &models.EncryptedField{IV: good.IV, CT: good.CT}},
		{"bad base64", &models.EncryptedField{IV: "!!!", CT: good.CT, Tag: good.Tag}},
		{"short iv", &models.EncryptedField{IV: base64.StdEncoding.EncodeToString([]byte("short")), CT: good.CT, Tag: good.Tag}},
		{"short tag", &models.EncryptedField{IV: good.IV, CT: good.CT, Tag: base64.StdEncoding.EncodeToString([]byte("tag"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DecryptField(key, tt.field)
			if !errors.Is(err, ErrMalformedField) {
				t.Fatalf("expected ErrMalformedField, got %v", err)
			}
		})
	}
}

func TestFieldCipher_BytesRoundTrip(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x07)
	data := []byte{0x00, 0xFF, 0x10, 0x20}

	field, err := c.EncryptBytes(key, data)
	if err != nil {
		t.Fatalf("EncryptBytes error: %v", err)
	}
	got, err := c.DecryptBytes(key, &field)
	if err != nil {
		t.Fatalf("DecryptBytes error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip = %x, want %x", got, data)
	}
}

func TestFieldCipher_DestroyedKey(t *testing.T) {
	c := NewFieldCipher()
	key := newTestKey(t, 0x08)
	field, _ := c.EncryptField(key, "hello")

	key.Destroy()

	if _, err := c.EncryptField(key, "x"); !errors.Is(err, ErrKeyDestroyed) {
		t.Fatalf("expected ErrKeyDestroyed on encrypt, got %v", err)
	}
	if _, err := c.DecryptField(key, &field); !errors.Is(err, ErrKeyDestroyed) {
		t.Fatalf("expected ErrKeyDestroyed on decrypt, got %v", err)
	}
}
