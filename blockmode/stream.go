package blockmode

import (
	"context"

	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// EncryptStream is EncryptCBC with a cancellation check between
// blocks, grounded on the teacher's EncryptBytes/select pattern in
// cipher/context.go. CBC chaining is inherently sequential (§5), so
// this is the one mode where a per-block cancellation point is
// meaningful; OCB2's per-block work is independent enough that a
// caller wanting cancellation should check ctx.Err() around the call
// instead. A cancelled operation has no partial-output contract: on
// cancellation, EncryptStream returns ctx.Err() and a nil buffer
// rather than the blocks encrypted so far.
func EncryptStream(ctx context.Context, cipher *rijndael.Cipher, iv, plaintext []byte) ([]byte, error) {
	bs := cipher.BlockSize()
	if len(iv) != bs {
		return nil, errors.ErrInvalidBlockSize
	}

	padded := zeroPad(plaintext, bs)
	out := make([]byte, len(padded))
	prev := iv

	for off := 0; off < len(padded); off += bs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

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

// DecryptStream is DecryptCBC with the same per-block cancellation
// check as EncryptStream.
func DecryptStream(ctx context.Context, cipher *rijndael.Cipher, iv, ciphertext []byte) ([]byte, error) {
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
		if err := ctx.Err(); err != nil {
			return nil, err
		}

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
