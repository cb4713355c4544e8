package blockmode

import (
	"context"

	"github.com/masterkusok/rijndaelbox/internal/galois128"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// PMAC computes the Rogaway PMAC of header under cipher, per §4.6.
// cipher must be configured for Nb=4 (16-byte blocks); header must be
// non-empty, since OCB2 callers are responsible for skipping the PMAC
// step entirely on empty associated data.
func PMAC(ctx context.Context, cipher *rijndael.Cipher, header []byte) ([galois128.BlockSize]byte, error) {
	var zero [galois128.BlockSize]byte
	lBlock, err := encryptBlock16(ctx, cipher, zero)
	if err != nil {
		return zero, err
	}
	l := galois128.Triple(galois128.Triple(lBlock))

	blocks, lastLen := splitBlocks(header, galois128.BlockSize)
	m := len(blocks)

	var checksum [galois128.BlockSize]byte
	for i := 0; i < m-1; i++ {
		l = galois128.Double(l)
		enc, err := encryptBlock16(ctx, cipher, galois128.Xor(l, blocks[i]))
		if err != nil {
			return zero, err
		}
		checksum = galois128.Xor(checksum, enc)
	}

	last := blocks[m-1]
	l = galois128.Double(l)
	if lastLen == galois128.BlockSize {
		l = galois128.Triple(l)
		checksum = galois128.Xor(checksum, last)
	} else {
		l = galois128.Triple(galois128.Triple(l))
		padded := last
		padded[lastLen] = 0x80
		checksum = galois128.Xor(checksum, padded)
	}

	return encryptBlock16(ctx, cipher, galois128.Xor(l, checksum))
}

// splitBlocks splits data into blockSize-sized chunks, the last one
// zero-padded (and tracked separately via its true length). data must
// be non-empty; splitBlocks always returns at least one block.
func splitBlocks(data []byte, blockSize int) (blocks [][galois128.BlockSize]byte, lastLen int) {
	m := (len(data) + blockSize - 1) / blockSize
	if m == 0 {
		m = 1
	}
	blocks = make([][galois128.BlockSize]byte, m)
	for i := 0; i < m; i++ {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		copy(blocks[i][:], data[start:end])
		if i == m-1 {
			lastLen = end - start
		}
	}
	return blocks, lastLen
}

// encryptBlock16 encrypts a single 16-byte block through cipher,
// converting to and from the fixed-size array representation used by
// the GF(2^128) offset arithmetic.
func encryptBlock16(ctx context.Context, cipher *rijndael.Cipher, block [galois128.BlockSize]byte) ([galois128.BlockSize]byte, error) {
	out, err := cipher.EncryptBlock(ctx, block[:])
	var result [galois128.BlockSize]byte
	if err != nil {
		return result, err
	}
	copy(result[:], out)
	return result, nil
}
