package polynomial

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// KeyLength is the length of a Key in bytes
const KeyLength = chacha20.KeySize

// Key is a chacha20 key from which random coefficients are derived
type Key [KeyLength]byte

// NewKey returns a fresh random key
func NewKey() (k Key, err error) {
	_, err = io.ReadFull(rand.Reader, k[:])
	if err != nil {
		return Key{}, err
	}
	return
}

// KeyFromSeed derives a key from an arbitrary seed with HKDF-SHA256.
// The same seed always gives the same key.
func KeyFromSeed(seed []byte) (k Key, err error) {
	kdf := hkdf.New(sha256.New, seed, nil, []byte("polynomial coefficients"))
	_, err = io.ReadFull(kdf, k[:])
	if err != nil {
		return Key{}, err
	}
	return
}

// Stream returns the chacha20 key stream of key for the given nonce.
// Should never be called twice with the same key and nonce for different purposes
func Stream(key *Key, nonce uint64) io.Reader {
	var n [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], n[:])
	if err != nil {
		// only happens with wrong key or nonce sizes
		panic(err)
	}
	return &keyStream{c: c}
}

type keyStream struct {
	c *chacha20.Cipher
}

func (s *keyStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// RandomInt returns a uniformly random non-negative integer of at most bits bits
// read from r
func RandomInt(r io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return new(big.Int), nil
	}
	buf := make([]byte, (bits+7)/8)
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, err
	}
	// clear the extra high bits
	if extra := len(buf)*8 - bits; extra > 0 {
		buf[0] &= 0xff >> extra
	}
	return new(big.Int).SetBytes(buf), nil
}

// Random returns a polynomial of k coefficients whose constant term is secret
// and whose other coefficients are random non-negative integers of at most bits bits.
// Coefficient i is drawn from the key stream of key with nonce i.
// The leading coefficient is never zero when k > 1, so the degree is exactly k-1.
func Random(secret *big.Int, k int, bits int, key *Key) (*Polynomial, error) {
	if k < 1 {
		return nil, fmt.Errorf("polynomial needs at least one coefficient, got %d", k)
	}
	coefs := make([]*big.Int, k)
	coefs[k-1] = secret
	for i := 0; i < k-1; i++ {
		c, err := RandomInt(Stream(key, uint64(i)), bits)
		if err != nil {
			return nil, fmt.Errorf("cannot draw coefficient %d: %w", i, err)
		}
		coefs[i] = c
	}
	if k > 1 && coefs[0].Sign() == 0 {
		coefs[0].SetInt64(1)
	}
	return FromBigInts(coefs), nil
}
