// Package kdf reproduces the reference implementation's weak
// password-derived key: no salt, no iteration count, key material
// derived by CBC-encrypting the password under a schedule expanded
// from itself. It exists purely for interop with containers produced
// by that reference and MUST NOT be treated as a secure KDF.
package kdf

import (
	"context"

	"github.com/masterkusok/rijndaelbox/blockmode"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// DeriveKey reproduces §4.8 exactly:
//  1. right-pad password with zero bytes to a multiple of Nk*4;
//  2. expand a round-key schedule from the first Nk*4 bytes of the
//     padded password (Nb = Nk);
//  3. CBC-encrypt the padded password under that schedule with an
//     all-zero IV;
//  4. return the final Nk*4 bytes of the CBC output.
//
// Nk must be 4, 6, or 8. This derivation is deliberately weak
// (self-referential, unsalted, single pass) and is reproduced only
// for bit-exact compatibility with existing containers.
func DeriveKey(ctx context.Context, password []byte, nk int) ([]byte, error) {
	blockLen := nk * 4
	padded := padPassword(password, blockLen)

	c, err := rijndael.New(nk, nk)
	if err != nil {
		return nil, err
	}
	if err := c.SetKey(ctx, padded[:blockLen]); err != nil {
		return nil, err
	}

	iv := make([]byte, blockLen)
	ct, err := blockmode.EncryptCBC(ctx, c, iv, padded)
	if err != nil {
		return nil, err
	}

	return ct[len(ct)-blockLen:], nil
}

// padPassword right-pads password with zero bytes to a multiple of
// blockLen, per §4.8 step 1. Like blockmode's zeroPad (§4.4), a
// non-empty password that is already block-aligned is returned
// unpadded. Unlike zeroPad, an empty password is padded to one full
// block of zeros, since the padded password must supply the
// blockLen-byte key-schedule seed.
func padPassword(password []byte, blockLen int) []byte {
	rem := len(password) % blockLen
	if rem == 0 && len(password) > 0 {
		return append([]byte(nil), password...)
	}
	padLen := blockLen - rem
	return append(append([]byte(nil), password...), make([]byte, padLen)...)
}
