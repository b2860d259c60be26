package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewKey_WipesSource(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAA}, 32)
	key := NewKey(raw)

	if !bytes.Equal(raw, make([]byte, 32)) {
		t.Fatal("expected source bytes to be wiped")
	}

	var seen []byte
	if err := key.Use(func(b []byte) error {
		seen = bytes.Clone(b)
		return nil
	}); err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if !bytes.Equal(seen, bytes.Repeat([]byte{0xAA}, 32)) {
		t.Fatal("key contents changed")
	}
}

func TestKey_Destroy(t *testing.T) {
	key := NewKey(bytes.Repeat([]byte{0x01}, 32))
	if !key.Alive() {
		t.Fatal("new key must be alive")
	}

	key.Destroy()
	key.Destroy()

	if key.Alive() {
		t.Fatal("destroyed key must not be alive")
	}
	err := key.Use(func([]byte) error { return nil })
	if !errors.Is(err, ErrKeyDestroyed) {
		t.Fatalf("expected ErrKeyDestroyed, got %v", err)
	}
}

func TestKey_NilIsDead(t *testing.T) {
	var key *Key
	if key.Alive() {
		t.Fatal("nil key must not be alive")
	}
	key.Destroy()
	if err := key.Use(func([]byte) error { return nil }); !errors.Is(err, ErrKeyDestroyed) {
		t.Fatalf("expected ErrKeyDestroyed, got %v", err)
	}
}

func TestKey_UsePropagatesCallbackError(t *testing.T) {
	key := NewKey(bytes.Repeat([]byte{0x01}, 32))
	want := errors.New("boom")
	if err := key.Use(func([]byte) error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected callback error, got %v", err)
	}
}
