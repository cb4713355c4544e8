package rijndaelbox

import (
	"context"
	"encoding/base64"

	"github.com/masterkusok/rijndaelbox/container"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/kdf"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// Decrypt parses a container produced by Encrypt, derives the key
// from password using the header's declared Nk, and returns the
// original plaintext. It returns ErrAuthenticationFailed for OCB
// containers whose tag does not verify, without returning any
// candidate plaintext.
func Decrypt(containerBytes, password []byte) ([]byte, error) {
	ctx := context.Background()

	h, rest, err := container.ParseHeader(containerBytes)
	if err != nil {
		return nil, err
	}

	payload := rest
	if h.Encoding == container.EncodingBase64 {
		decoded := make([]byte, base64.StdEncoding.DecodedLen(len(rest)))
		n, err := base64.StdEncoding.Decode(decoded, rest)
		if err != nil {
			return nil, errors.ErrBadBase64
		}
		payload = decoded[:n]
	}

	key, err := kdf.DeriveKey(ctx, password, h.Nk)
	if err != nil {
		return nil, errors.Annotate(err, "derive key: %w")
	}

	cipher, err := rijndael.New(h.Nb, h.Nk)
	if err != nil {
		return nil, err
	}
	if err := cipher.SetKey(ctx, key); err != nil {
		return nil, err
	}
	defer cipher.Zeroize()

	switch h.Mode {
	case container.ModeCBC:
		return container.DecodeCBCPayload(ctx, cipher, payload)
	case container.ModeOCB:
		headerLine := containerBytes[:len(containerBytes)-len(rest)]
		return container.DecodeOCBPayload(ctx, cipher, headerLine, payload)
	default:
		return nil, errors.ErrBadHeader
	}
}
