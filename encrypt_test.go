package rijndaelbox_test

import (
	"encoding/base64"
	"strings"
	"testing"

	rijndaelbox "github.com/masterkusok/rijndaelbox"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/stretchr/testify/require"
)

// TestFullContainerRoundTrip is S5: default options (OCB, base64,
// Nb=4, Nk=4, 'U'), a password-derived key, and a short plaintext.
func TestFullContainerRoundTrip(t *testing.T) {
	password := []byte("correct horse battery staple")
	plaintext := []byte("hello\n")

	out, err := rijndaelbox.Encrypt(plaintext, password, rijndaelbox.DefaultOptions())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(string(out), "aes-encrypted V 1.2-OCB-B-4-4-U\n"))

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestTamperedContainerFailsAuthentication is S6: flipping a single
// base64-decoded payload byte after the header must fail decryption.
func TestTamperedContainerFailsAuthentication(t *testing.T) {
	password := []byte("correct horse battery staple")
	plaintext := []byte("hello\n")

	out, err := rijndaelbox.Encrypt(plaintext, password, rijndaelbox.DefaultOptions())
	require.NoError(t, err)

	nl := strings.IndexByte(string(out), '\n')
	require.GreaterOrEqual(t, nl, 0)

	header := out[:nl+1]
	payload, err := base64.StdEncoding.DecodeString(string(out[nl+1:]))
	require.NoError(t, err)
	payload[len(payload)/2] ^= 0x01
	body := []byte(base64.StdEncoding.EncodeToString(payload))

	tampered := append(append([]byte(nil), header...), body...)

	_, err = rijndaelbox.Decrypt(tampered, password)
	require.ErrorIs(t, err, errors.ErrAuthenticationFailed)
}

func TestCBCModeRoundTrip(t *testing.T) {
	password := []byte("hunter2")
	plaintext := []byte("The quick brown fox jumps over the lazy dog")

	opts := rijndaelbox.DefaultOptions()
	opts.Mode = rijndaelbox.ModeCBC

	out, err := rijndaelbox.Encrypt(plaintext, password, opts)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "aes-encrypted V 1.2-CBC-B-4-4-U\n"))

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestRawEncodingRoundTrip(t *testing.T) {
	password := []byte("hunter2")
	plaintext := []byte("raw payload, no base64")

	opts := rijndaelbox.DefaultOptions()
	opts.Encoding = rijndaelbox.EncodingRaw

	out, err := rijndaelbox.Encrypt(plaintext, password, opts)
	require.NoError(t, err)

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestAutoModeSelectsCBCForLargePlaintext(t *testing.T) {
	password := []byte("hunter2")
	plaintext := make([]byte, 25000)

	out, err := rijndaelbox.Encrypt(plaintext, password, rijndaelbox.DefaultOptions())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "aes-encrypted V 1.2-CBC-B-4-4-U\n"))
}

// TestOCBForcesNbToFour verifies that requesting OCB with a non-4 Nb
// does not fail: OCB2 is only defined for Nb=4, so the resolved
// header silently forces Nb=4 rather than rejecting the request.
func TestOCBForcesNbToFour(t *testing.T) {
	password := []byte("hunter2")
	plaintext := []byte("hello\n")

	opts := rijndaelbox.DefaultOptions()
	opts.Mode = rijndaelbox.ModeOCB
	opts.Nb = 8

	out, err := rijndaelbox.Encrypt(plaintext, password, opts)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "aes-encrypted V 1.2-OCB-B-4-4-U\n"))

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestAutoModeForcesNbToFourWhenResolvingToOCB covers ModeAuto: a
// short plaintext auto-resolves to OCB, which must force Nb=4 even
// when opts.Nb requests a larger block size.
func TestAutoModeForcesNbToFourWhenResolvingToOCB(t *testing.T) {
	password := []byte("hunter2")
	plaintext := []byte("hello\n")

	opts := rijndaelbox.DefaultOptions()
	opts.Nb = 8

	out, err := rijndaelbox.Encrypt(plaintext, password, opts)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "aes-encrypted V 1.2-OCB-B-4-4-U\n"))

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestEncryptRejectsInvalidWordCounts(t *testing.T) {
	opts := rijndaelbox.DefaultOptions()
	opts.Nb = 5

	_, err := rijndaelbox.Encrypt([]byte("x"), []byte("p"), opts)
	require.ErrorIs(t, err, errors.ErrInvalidBlockSize)
}

func TestDifferentNbNkRoundTrip(t *testing.T) {
	password := []byte("hunter2")
	plaintext := []byte("cross-size round trip")

	opts := rijndaelbox.DefaultOptions()
	opts.Mode = rijndaelbox.ModeCBC
	opts.Nb = 8
	opts.Nk = 6

	out, err := rijndaelbox.Encrypt(plaintext, password, opts)
	require.NoError(t, err)

	got, err := rijndaelbox.Decrypt(out, password)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}
