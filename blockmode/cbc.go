// Package blockmode implements the chaining and authenticated modes
// built on top of a keyed [github.com/masterkusok/rijndaelbox/rijndael.Cipher]:
// CBC, and OCB2 with PMAC-authenticated associated data.
package blockmode

import (
	"context"

	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// EncryptCBC encrypts plaintext under cipher in CBC mode, per §4.4.
// plaintext is zero-padded to a full block boundary before chaining;
// the IV is not prepended to the returned ciphertext. iv must be
// exactly one block long.
func EncryptCBC(ctx context.Context, cipher *rijndael.Cipher, iv, plaintext []byte) ([]byte, error) {
	bs := cipher.BlockSize()
	if len(iv) != bs {
		return nil, errors.ErrInvalidBlockSize
	}

	padded := zeroPad(plaintext, bs)
	out := make([]byte, len(padded))
	prev := iv

	for off := 0; off < len(padded); off += bs {
		block := make([]byte, bs)
		for i := 0; i < bs; i++ {
			block[i] = padded[off+i] ^ prev[i]
		}
		enc, err := cipher.EncryptBlock(ctx, block)
		if err != nil {
			return nil, err
		}
		copy(out[off:off+bs], enc)
		prev = out[off : off+bs]
	}

	return out, nil
}

// DecryptCBC decrypts ciphertext under cipher in CBC mode, the
// inverse of EncryptCBC. It does not strip the zero padding added by
// EncryptCBC; callers disambiguate real trailing zeros from padding
// via an explicit length prefix (§4.9). ciphertext must be a multiple
// of the block size, else ErrBadCiphertextLength; an empty ciphertext
// is a multiple of any block size and decrypts to an empty plaintext,
// matching EncryptCBC's treatment of an empty plaintext.
func DecryptCBC(ctx context.Context, cipher *rijndael.Cipher, iv, ciphertext []byte) ([]byte, error) {
	bs := cipher.BlockSize()
	if len(iv) != bs {
		return nil, errors.ErrInvalidBlockSize
	}
	if len(ciphertext)%bs != 0 {
		return nil, errors.ErrBadCiphertextLength
	}

	out := make([]byte, len(ciphertext))
	prev := iv

	for off := 0; off < len(ciphertext); off += bs {
		block := ciphertext[off : off+bs]
		dec, err := cipher.DecryptBlock(ctx, block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < bs; i++ {
			out[off+i] = dec[i] ^ prev[i]
		}
		prev = block
	}

	return out, nil
}
