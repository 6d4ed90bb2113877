package cipher_test

import (
	"bytes"
	"testing"

	"github.com/dantte-lp/mcproto/internal/cipher"
)

func TestCFB8EncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789ABCDEF") // 16 bytes

	plaintext := []byte("the quick brown fox jumps over the lazy dog, 1234567890!")

	enc, err := cipher.NewEncryptStream(secret)
	if err != nil {
		t.Fatalf("NewEncryptStream: %v", err)
	}
	ciphertext := make([]byte, len(plaintext))
	enc.XForm(ciphertext, plaintext)

	if bytes.Equal(ciphertext, plaintext) {
		t.Error("ciphertext equals plaintext")
	}

	dec, err := cipher.NewDecryptStream(secret)
	if err != nil {
		t.Fatalf("NewDecryptStream: %v", err)
	}
	decrypted := make([]byte, len(ciphertext))
	dec.XForm(decrypted, ciphertext)

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestCFB8StreamingAcrossCalls(t *testing.T) {
	t.Parallel()

	secret := []byte("FEDCBA9876543210")
	plaintext := []byte("streamed-across-multiple-small-xform-calls")

	enc, err := cipher.NewEncryptStream(secret)
	if err != nil {
		t.Fatalf("NewEncryptStream: %v", err)
	}

	ciphertext := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		enc.XForm(ciphertext[i:i+1], plaintext[i:i+1])
	}

	dec, err := cipher.NewDecryptStream(secret)
	if err != nil {
		t.Fatalf("NewDecryptStream: %v", err)
	}
	decrypted := make([]byte, len(ciphertext))
	dec.XForm(decrypted, ciphertext)

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("byte-at-a-time encrypt vs bulk decrypt mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestCFB8RejectsBadKeyLength(t *testing.T) {
	t.Parallel()

	if _, err := cipher.NewEncryptStream([]byte("short")); err == nil {
		t.Error("NewEncryptStream with bad key length: want error")
	}
}
