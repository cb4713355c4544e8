package blockmode

import (
	"context"
	"encoding/binary"

	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/internal/galois128"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// Tag is the block-sized authenticator OCB2 produces and verifies.
type Tag = [galois128.BlockSize]byte

// EncryptOCB2 encrypts plaintext under cipher in OCB2 (Offset Codebook
// Mode v2), authenticating header as associated data, per §4.7.
// cipher must be configured for Nb=4 (16-byte blocks); iv must be
// exactly one block long. Ciphertext length equals len(plaintext); no
// block padding is visible to the caller.
func EncryptOCB2(ctx context.Context, cipher *rijndael.Cipher, iv, header, plaintext []byte) (ciphertext []byte, tag Tag, err error) {
	if cipher.BlockSize() != galois128.BlockSize {
		return nil, tag, errors.ErrInvalidBlockSize
	}
	if len(iv) != galois128.BlockSize {
		return nil, tag, errors.ErrInvalidBlockSize
	}

	var ivBlock [galois128.BlockSize]byte
	copy(ivBlock[:], iv)
	l, err := encryptBlock16(ctx, cipher, ivBlock)
	if err != nil {
		return nil, tag, err
	}

	var checksum [galois128.BlockSize]byte
	out := make([]byte, len(plaintext))

	m := maxInt(1, ceilDiv(len(plaintext), galois128.BlockSize))
	b := len(plaintext) - (m-1)*galois128.BlockSize

	for i := 0; i < m-1; i++ {
		l = galois128.Double(l)
		var p [galois128.BlockSize]byte
		copy(p[:], plaintext[i*galois128.BlockSize:(i+1)*galois128.BlockSize])
		checksum = galois128.Xor(checksum, p)

		enc, err := encryptBlock16(ctx, cipher, galois128.Xor(l, p))
		if err != nil {
			return nil, tag, err
		}
		c := galois128.Xor(l, enc)
		copy(out[i*galois128.BlockSize:(i+1)*galois128.BlockSize], c[:])
	}

	l = galois128.Double(l)
	lastStart := (m - 1) * galois128.BlockSize
	var last [galois128.BlockSize]byte
	copy(last[:], plaintext[lastStart:lastStart+b])

	pad, err := encryptBlock16(ctx, cipher, galois128.Xor(l, num2str(8*b)))
	if err != nil {
		return nil, tag, err
	}
	for i := 0; i < b; i++ {
		out[lastStart+i] = last[i] ^ pad[i]
	}

	var checksumTerm [galois128.BlockSize]byte
	copy(checksumTerm[:], last[:b])
	copy(checksumTerm[b:], pad[b:])
	checksum = galois128.Xor(checksum, checksumTerm)

	l = galois128.Triple(l)
	tag, err = encryptBlock16(ctx, cipher, galois128.Xor(checksum, l))
	if err != nil {
		return nil, tag, err
	}

	if len(header) > 0 {
		headerTag, err := PMAC(ctx, cipher, header)
		if err != nil {
			return nil, tag, err
		}
		tag = galois128.Xor(tag, headerTag)
	}

	return out, tag, nil
}

// DecryptOCB2 decrypts ciphertext and verifies tag against header, the
// structural inverse of EncryptOCB2. On tag mismatch it returns
// ErrAuthenticationFailed and a nil plaintext; the candidate plaintext
// buffer is zeroized before return and never handed to the caller.
func DecryptOCB2(ctx context.Context, cipher *rijndael.Cipher, iv, header, ciphertext []byte, wantTag Tag) ([]byte, error) {
	if cipher.BlockSize() != galois128.BlockSize {
		return nil, errors.ErrInvalidBlockSize
	}
	if len(iv) != galois128.BlockSize {
		return nil, errors.ErrInvalidBlockSize
	}

	var ivBlock [galois128.BlockSize]byte
	copy(ivBlock[:], iv)
	l, err := encryptBlock16(ctx, cipher, ivBlock)
	if err != nil {
		return nil, err
	}

	var checksum [galois128.BlockSize]byte
	out := make([]byte, len(ciphertext))

	m := maxInt(1, ceilDiv(len(ciphertext), galois128.BlockSize))
	b := len(ciphertext) - (m-1)*galois128.BlockSize

	for i := 0; i < m-1; i++ {
		l = galois128.Double(l)
		var c [galois128.BlockSize]byte
		copy(c[:], ciphertext[i*galois128.BlockSize:(i+1)*galois128.BlockSize])

		in := galois128.Xor(l, c)
		decOut, err := cipher.DecryptBlock(ctx, in[:])
		if err != nil {
			return nil, err
		}
		var dec [galois128.BlockSize]byte
		copy(dec[:], decOut)
		p := galois128.Xor(l, dec)
		copy(out[i*galois128.BlockSize:(i+1)*galois128.BlockSize], p[:])
		checksum = galois128.Xor(checksum, p)
	}

	l = galois128.Double(l)
	lastStart := (m - 1) * galois128.BlockSize
	var lastCT [galois128.BlockSize]byte
	copy(lastCT[:], ciphertext[lastStart:lastStart+b])

	pad, err := encryptBlock16(ctx, cipher, galois128.Xor(l, num2str(8*b)))
	if err != nil {
		return nil, err
	}

	var last [galois128.BlockSize]byte
	for i := 0; i < b; i++ {
		last[i] = lastCT[i] ^ pad[i]
		out[lastStart+i] = last[i]
	}

	var checksumTerm [galois128.BlockSize]byte
	copy(checksumTerm[:], last[:b])
	copy(checksumTerm[b:], pad[b:])
	checksum = galois128.Xor(checksum, checksumTerm)

	l = galois128.Triple(l)
	tag, err := encryptBlock16(ctx, cipher, galois128.Xor(checksum, l))
	if err != nil {
		return nil, err
	}

	if len(header) > 0 {
		headerTag, err := PMAC(ctx, cipher, header)
		if err != nil {
			return nil, err
		}
		tag = galois128.Xor(tag, headerTag)
	}

	if tag != wantTag {
		for i := range out {
			out[i] = 0
		}
		return nil, errors.ErrAuthenticationFailed
	}

	return out, nil
}

// num2str big-endian-encodes n into a full 16-byte block, per the
// `num2str(8*b, block)` term of §4.7 step 5.
func num2str(n int) [galois128.BlockSize]byte {
	var out [galois128.BlockSize]byte
	binary.BigEndian.PutUint64(out[galois128.BlockSize-8:], uint64(n))
	return out
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
