// Package rijndael implements the generalized Rijndael block cipher
// for Nb, Nk in {4, 6, 8} words, following the original algorithm
// rather than the Nb=4-only AES subset. The S-box, multiplication
// table, and combined-round lmul tables live in
// [github.com/masterkusok/rijndaelbox/internal/galois].
//
// There is no side-channel hardening: S-box and lmul table lookups are
// indexed by key- and data-dependent bytes, so the cipher is not
// constant-time.
package rijndael

import (
	"context"

	"github.com/masterkusok/rijndaelbox/errors"
)

// Cipher is a keyed Rijndael instance for a fixed Nb/Nk configuration.
// The zero value is not usable; construct with New.
type Cipher struct {
	nb, nk, nr int
	schedule   []word
}

// New constructs a Cipher for the given block size (Nb) and key size
// (Nk), both in 32-bit words. Both must be 4, 6, or 8.
func New(nb, nk int) (*Cipher, error) {
	if !validNbNk(nb) {
		return nil, errors.ErrInvalidBlockSize
	}
	if !validNbNk(nk) {
		return nil, errors.ErrInvalidKeyLength
	}
	return &Cipher{nb: nb, nk: nk, nr: numRounds(nb, nk)}, nil
}

// Nb returns the block size in words.
func (c *Cipher) Nb() int { return c.nb }

// Nk returns the key size in words.
func (c *Cipher) Nk() int { return c.nk }

// Nr returns the number of rounds.
func (c *Cipher) Nr() int { return c.nr }

// BlockSize returns the block size in bytes (Nb*4).
func (c *Cipher) BlockSize() int { return c.nb * 4 }

// SetKey expands key into the round-key schedule. key must be exactly
// Nk*4 bytes long and match the Nk this Cipher was constructed with.
func (c *Cipher) SetKey(_ context.Context, key []byte) error {
	if len(key) != c.nk*4 {
		return errors.ErrInvalidKeyLength
	}
	schedule, err := expandKey(key, c.nb)
	if err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}

// roundKey flattens the Nb words of round r into a contiguous byte slice.
func (c *Cipher) roundKey(r int) []byte {
	out := make([]byte, c.nb*4)
	base := r * c.nb
	for j := 0; j < c.nb; j++ {
		copy(out[4*j:4*j+4], c.schedule[base+j][:])
	}
	return out
}

// EncryptBlock encrypts a single Nb*4-byte block into a new slice,
// leaving block unchanged, semantics of §4.3: AddRoundKey(0), Nr-1 full rounds, then a final round
// without MixColumns.
func (c *Cipher) EncryptBlock(_ context.Context, block []byte) ([]byte, error) {
	if c.schedule == nil {
		return nil, errors.ErrInvalidKeyLength
	}
	if len(block) != c.nb*4 {
		return nil, errors.ErrInvalidBlockSize
	}

	state := append([]byte(nil), block...)
	addRoundKey(state, c.roundKey(0))
	for r := 1; r < c.nr; r++ {
		subBytes(state)
		shiftRows(state, c.nb)
		mixColumns(state, c.nb)
		addRoundKey(state, c.roundKey(r))
	}
	subBytes(state)
	shiftRows(state, c.nb)
	addRoundKey(state, c.roundKey(c.nr))

	return state, nil
}

// DecryptBlock decrypts a single Nb*4-byte block, the exact inverse of
// EncryptBlock: AddRoundKey(Nr), Nr-1 full inverse rounds in
// InvShiftRows/InvSubBytes/AddRoundKey/InvMixColumns order, then a
// final AddRoundKey(0) after InvShiftRows/InvSubBytes.
func (c *Cipher) DecryptBlock(_ context.Context, block []byte) ([]byte, error) {
	if c.schedule == nil {
		return nil, errors.ErrInvalidKeyLength
	}
	if len(block) != c.nb*4 {
		return nil, errors.ErrInvalidBlockSize
	}

	state := append([]byte(nil), block...)
	addRoundKey(state, c.roundKey(c.nr))
	for r := c.nr - 1; r >= 1; r-- {
		invShiftRows(state, c.nb)
		invSubBytes(state)
		addRoundKey(state, c.roundKey(r))
		invMixColumns(state, c.nb)
	}
	invShiftRows(state, c.nb)
	invSubBytes(state)
	addRoundKey(state, c.roundKey(0))

	return state, nil
}

// Zeroize overwrites the expanded round-key schedule with zero bytes.
// Call this once the Cipher is no longer needed.
func (c *Cipher) Zeroize() {
	for i := range c.schedule {
		c.schedule[i] = word{}
	}
	c.schedule = nil
}
