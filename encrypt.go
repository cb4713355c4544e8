package rijndaelbox

import (
	"context"
	"encoding/base64"

	"github.com/masterkusok/rijndaelbox/container"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/kdf"
	"github.com/masterkusok/rijndaelbox/random"
	"github.com/masterkusok/rijndaelbox/rijndael"
)

// Encrypt derives a key from password via kdf.DeriveKey, encrypts
// plaintext under opts, and returns the full text container: a header
// line followed by the (optionally base64-encoded) payload. A zero
// Options{} is not valid; start from DefaultOptions().
func Encrypt(plaintext, password []byte, opts Options) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ctx := context.Background()

	mode := opts.Mode
	if mode == ModeAuto {
		switch container.SelectDefaultMode(len(plaintext)) {
		case container.ModeOCB:
			mode = ModeOCB
		default:
			mode = ModeCBC
		}
	}

	containerMode := toContainerMode(mode)
	nb := resolveNb(containerMode, opts.Nb)

	key, err := kdf.DeriveKey(ctx, password, opts.Nk)
	if err != nil {
		return nil, errors.Annotate(err, "derive key: %w")
	}

	cipher, err := rijndael.New(nb, opts.Nk)
	if err != nil {
		return nil, err
	}
	if err := cipher.SetKey(ctx, key); err != nil {
		return nil, err
	}
	defer cipher.Zeroize()

	rnd := opts.Random
	if rnd == nil {
		rnd = random.Default
	}
	iv := make([]byte, cipher.BlockSize())
	if err := rnd.Fill(iv); err != nil {
		return nil, errors.Annotate(err, "fill iv: %w")
	}

	h := container.Header{
		Nb:       nb,
		Nk:       opts.Nk,
		Char:     toContainerCharMarker(opts.CharMarker),
		Encoding: toContainerEncoding(opts.Encoding),
		Mode:     containerMode,
	}

	var payload []byte
	switch mode {
	case ModeCBC:
		payload, err = container.EncodeCBCPayload(ctx, cipher, iv, plaintext)
	case ModeOCB:
		payload, err = container.EncodeOCBPayload(ctx, cipher, iv, h.Line(), plaintext)
	default:
		err = errors.ErrBadHeader
	}
	if err != nil {
		return nil, err
	}

	if opts.Encoding == EncodingBase64 {
		encoded := make([]byte, base64.StdEncoding.EncodedLen(len(payload)))
		base64.StdEncoding.Encode(encoded, payload)
		payload = encoded
	}

	out := make([]byte, 0, len(h.Line())+len(payload))
	out = append(out, h.Line()...)
	out = append(out, payload...)
	return out, nil
}

func toContainerMode(m Mode) container.Mode {
	if m == ModeCBC {
		return container.ModeCBC
	}
	return container.ModeOCB
}

func toContainerEncoding(e Encoding) container.Encoding {
	if e == EncodingRaw {
		return container.EncodingRaw
	}
	return container.EncodingBase64
}

func toContainerCharMarker(c CharMarker) container.CharMarker {
	if c == CharMultibyte {
		return container.CharMarkerMultibyte
	}
	return container.CharMarkerRaw
}
