// Package cipher implements the AES-128-CFB8 stream transform the
// Minecraft handshake uses to encrypt the connection after EncryptionResponse
// (spec C7, spec.md §6). Go's standard library only exposes full-block CFB
// (cipher.NewCFBEncrypter/Decrypter operate on the block's full width); CFB8
// feeds back one byte at a time, so it is hand-built here directly on
// crypto/aes's cipher.Block, matching no particular corpus file but
// following gobfd's pattern of wrapping a stdlib primitive in a small
// purpose-built stream type rather than reaching for a shim package.
package cipher

import "crypto/aes"

// blockSize is AES's fixed block size in bytes.
const blockSize = aes.BlockSize

// cfb8Stream is a one-byte-at-a-time CFB stream cipher over an AES-128
// block cipher, keyed and IV'd by the same 16-byte shared secret.
type cfb8Stream struct {
	block    [blockSize]byte // rolling feedback register
	aesBlock blockEncrypter
	encrypt  bool
}

// blockEncrypter is the subset of cipher.Block this package needs; AES's
// block cipher always encrypts for both CFB8 encryption and decryption
// (CFB never calls the block cipher's own decrypt).
type blockEncrypter interface {
	Encrypt(dst, src []byte)
}

// newCFB8 builds one CFB8 stream. key and iv must each be 16 bytes; per
// spec.md §6 both are set to the same shared secret.
func newCFB8(key, iv []byte, encrypt bool) (*cfb8Stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	s := &cfb8Stream{aesBlock: block, encrypt: encrypt}
	copy(s.block[:], iv)
	return s, nil
}

// NewEncryptStream returns a CFB8 stream that encrypts plaintext into
// ciphertext.
func NewEncryptStream(sharedSecret []byte) (Stream, error) {
	return newCFB8(sharedSecret, sharedSecret, true)
}

// NewDecryptStream returns a CFB8 stream that decrypts ciphertext into
// plaintext.
func NewDecryptStream(sharedSecret []byte) (Stream, error) {
	return newCFB8(sharedSecret, sharedSecret, false)
}

// Stream is one direction of a CFB8 transform: XForm processes src into dst
// (which may be the same slice), byte by byte, maintaining internal feedback
// state across calls.
type Stream interface {
	XForm(dst, src []byte)
}

// XForm implements Stream. For each byte: encrypt the 16-byte feedback
// register, XOR its first byte with the input byte to produce the output
// byte, then shift the register left by one byte and append the
// ciphertext byte (CFB8's feedback is always the ciphertext byte,
// regardless of direction).
func (s *cfb8Stream) XForm(dst, src []byte) {
	var keystream [blockSize]byte
	for i, in := range src {
		s.aesBlock.Encrypt(keystream[:], s.block[:])
		out := in ^ keystream[0]

		cipherByte := out
		if !s.encrypt {
			cipherByte = in
		}

		dst[i] = out
		copy(s.block[:blockSize-1], s.block[1:])
		s.block[blockSize-1] = cipherByte
	}
}
