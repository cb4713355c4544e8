package blockmode_test

import (
	"context"
	"testing"

	"github.com/masterkusok/rijndaelbox/blockmode"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/rijndael"
	"github.com/stretchr/testify/require"
)

func newZeroKeyCipher(t *testing.T) *rijndael.Cipher {
	t.Helper()
	return newCipher(t, 4, 4)
}

func newCipher(t *testing.T, nb, nk int) *rijndael.Cipher {
	t.Helper()
	c, err := rijndael.New(nb, nk)
	require.NoError(t, err)
	require.NoError(t, c.SetKey(context.Background(), make([]byte, nk*4)))
	return c
}

// TestCBCRoundTrip is S3: an all-zero key and IV, a plaintext that is
// not block-aligned, round-tripped through EncryptCBC/DecryptCBC.
func TestCBCRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newZeroKeyCipher(t)
	iv := make([]byte, 16)
	plaintext := []byte("The quick brown fox jumps over the lazy dog")

	ct, err := blockmode.EncryptCBC(ctx, c, iv, plaintext)
	require.NoError(t, err)
	require.Zero(t, len(ct)%16)

	pt, err := blockmode.DecryptCBC(ctx, c, iv, ct)
	require.NoError(t, err)

	// DecryptCBC does not strip padding; the original plaintext is a
	// prefix of the zero-padded result.
	require.True(t, len(pt) >= len(plaintext))
	require.Equal(t, plaintext, pt[:len(plaintext)])
	for _, b := range pt[len(plaintext):] {
		require.Zero(t, b)
	}
}

func TestCBCBlockAlignedPlaintextAddsNoPadding(t *testing.T) {
	ctx := context.Background()
	c := newZeroKeyCipher(t)
	iv := make([]byte, 16)
	plaintext := make([]byte, 32)
	for i := range plaintext {
		plaintext[i] = byte(i + 1)
	}

	ct, err := blockmode.EncryptCBC(ctx, c, iv, plaintext)
	require.NoError(t, err)
	require.Len(t, ct, 32)
}

// TestCBCEmptyPlaintextRoundTrip covers the empty-plaintext edge case:
// zero is a multiple of the block size, so EncryptCBC produces an
// empty ciphertext and DecryptCBC must accept it rather than treating
// it as a length error.
func TestCBCEmptyPlaintextRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newZeroKeyCipher(t)
	iv := make([]byte, 16)

	ct, err := blockmode.EncryptCBC(ctx, c, iv, nil)
	require.NoError(t, err)
	require.Empty(t, ct)

	pt, err := blockmode.DecryptCBC(ctx, c, iv, ct)
	require.NoError(t, err)
	require.Empty(t, pt)
}

func TestCBCDecryptRejectsMisalignedCiphertext(t *testing.T) {
	ctx := context.Background()
	c := newZeroKeyCipher(t)
	iv := make([]byte, 16)

	_, err := blockmode.DecryptCBC(ctx, c, iv, make([]byte, 17))
	require.ErrorIs(t, err, errors.ErrBadCiphertextLength)
}

func TestCBCRejectsWrongIVLength(t *testing.T) {
	ctx := context.Background()
	c := newZeroKeyCipher(t)

	_, err := blockmode.EncryptCBC(ctx, c, make([]byte, 15), []byte("hi"))
	require.ErrorIs(t, err, errors.ErrInvalidBlockSize)

	_, err = blockmode.DecryptCBC(ctx, c, make([]byte, 15), make([]byte, 16))
	require.ErrorIs(t, err, errors.ErrInvalidBlockSize)
}
