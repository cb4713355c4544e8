package container

import (
	"bytes"
	"context"
	"strconv"

	"github.com/masterkusok/rijndaelbox/blockmode"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// EncodeCBCPayload builds the pre-base64 CBC payload: iv followed by
// cbc_encrypt(len_ascii || "\n" || plaintext), per §4.9. iv must be
// exactly one block long.
func EncodeCBCPayload(ctx context.Context, cipher *rijndael.Cipher, iv, plaintext []byte) ([]byte, error) {
	framed := make([]byte, 0, len(plaintext)+12)
	framed = append(framed, strconv.Itoa(len(plaintext))...)
	framed = append(framed, '\n')
	framed = append(framed, plaintext...)

	ct, err := blockmode.EncryptCBC(ctx, cipher, iv, framed)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(iv)+len(ct))
	out = append(out, iv...)
	out = append(out, ct...)
	return out, nil
}

// DecodeCBCPayload is the inverse of EncodeCBCPayload: it splits off
// the leading iv, CBC-decrypts the remainder, parses the decimal
// length prefix, and returns exactly that many plaintext bytes,
// discarding the zero padding and any bytes past the declared length.
func DecodeCBCPayload(ctx context.Context, cipher *rijndael.Cipher, payload []byte) ([]byte, error) {
	bs := cipher.BlockSize()
	if len(payload) < bs {
		return nil, errors.ErrBadCiphertextLength
	}

	iv := payload[:bs]
	ct := payload[bs:]

	framed, err := blockmode.DecryptCBC(ctx, cipher, iv, ct)
	if err != nil {
		return nil, err
	}

	nl := bytes.IndexByte(framed, '\n')
	if nl < 0 {
		return nil, errors.ErrLengthPrefixMissing
	}

	n, err := strconv.Atoi(string(framed[:nl]))
	if err != nil || n < 0 {
		return nil, errors.ErrLengthPrefixMissing
	}

	body := framed[nl+1:]
	if n > len(body) {
		return nil, errors.ErrLengthPrefixMissing
	}

	return body[:n], nil
}

// EncodeOCBPayload builds the pre-base64 OCB payload: iv || tag ||
// ciphertext, per §4.9. headerLine is the exact header line bytes
// (including trailing newline), passed as OCB2's associated data.
func EncodeOCBPayload(ctx context.Context, cipher *rijndael.Cipher, iv, headerLine, plaintext []byte) ([]byte, error) {
	ct, tag, err := blockmode.EncryptOCB2(ctx, cipher, iv, headerLine, plaintext)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(iv)+len(tag)+len(ct))
	out = append(out, iv...)
	out = append(out, tag[:]...)
	out = append(out, ct...)
	return out, nil
}

// DecodeOCBPayload is the inverse of EncodeOCBPayload: the first 32
// bytes split into a 16-byte iv and a 16-byte tag, and the remainder
// is the ciphertext to verify against headerLine.
func DecodeOCBPayload(ctx context.Context, cipher *rijndael.Cipher, headerLine, payload []byte) ([]byte, error) {
	const ivLen, tagLen = 16, 16
	if len(payload) < ivLen+tagLen {
		return nil, errors.ErrBadCiphertextLength
	}

	iv := payload[:ivLen]
	var tag blockmode.Tag
	copy(tag[:], payload[ivLen:ivLen+tagLen])
	ct := payload[ivLen+tagLen:]

	return blockmode.DecryptOCB2(ctx, cipher, iv, headerLine, ct, tag)
}
