// Package container implements the text framing that sits between the
// cryptographic primitives and the outside world: a single ASCII
// header line followed by a raw-or-base64 payload, per §4.9.
package container

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/masterkusok/rijndaelbox/errors"
)

// Mode selects the chaining/authentication mode a container was
// encrypted with.
type Mode string

// The two modes the header grammar recognizes.
const (
	ModeOCB Mode = "OCB"
	ModeCBC Mode = "CBC"
)

// Encoding selects how the payload bytes following the header line are
// represented.
type Encoding string

// The two encodings the header grammar recognizes.
const (
	EncodingBase64 Encoding = "B"
	EncodingRaw    Encoding = "N"
)

// CharMarker records whether the original plaintext was multibyte
// text or raw bytes. It is stored and round-tripped without
// interpretation: this implementation never decodes or validates it
// as an encoding hint, only preserves it for header compatibility.
type CharMarker string

// The two character-width markers the header grammar recognizes.
const (
	CharMarkerMultibyte CharMarker = "M"
	CharMarkerRaw       CharMarker = "U"
)

const headerPrefix = "aes-encrypted V 1.2-"

// Header is the parsed form of a container's first line:
// "aes-encrypted V 1.2-<MODE>-<ENC>-<Nb>-<Nk>-<CHR>\n".
type Header struct {
	Mode     Mode
	Encoding Encoding
	Nb       int
	Nk       int
	Char     CharMarker
}

// Line renders h as the exact header line bytes, including the
// trailing newline. For OCB containers this is the associated data
// passed to PMAC, so any change here is a wire-format change.
func (h Header) Line() []byte {
	return []byte(fmt.Sprintf("%s%s-%s-%d-%d-%s\n", headerPrefix, h.Mode, h.Encoding, h.Nb, h.Nk, h.Char))
}

func validNbNk(n int) bool { return n == 4 || n == 6 || n == 8 }

func (h Header) validate() error {
	if h.Mode != ModeOCB && h.Mode != ModeCBC {
		return errors.ErrBadHeader
	}
	if h.Encoding != EncodingBase64 && h.Encoding != EncodingRaw {
		return errors.ErrBadHeader
	}
	if !validNbNk(h.Nb) || !validNbNk(h.Nk) {
		return errors.ErrBadHeader
	}
	if h.Char != CharMarkerMultibyte && h.Char != CharMarkerRaw {
		return errors.ErrBadHeader
	}
	return nil
}

// ParseHeader splits data into its header Header and the bytes
// following the header line. data must begin with a well-formed
// header line terminated by '\n'.
func ParseHeader(data []byte) (Header, []byte, error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return Header{}, nil, errors.ErrBadHeader
	}

	line := string(data[:nl])
	rest := data[nl+1:]

	if !strings.HasPrefix(line, headerPrefix) {
		return Header{}, nil, errors.ErrBadHeader
	}

	fields := strings.Split(strings.TrimPrefix(line, headerPrefix), "-")
	if len(fields) != 5 {
		return Header{}, nil, errors.ErrBadHeader
	}

	nb, err := strconv.Atoi(fields[2])
	if err != nil {
		return Header{}, nil, errors.ErrBadHeader
	}
	nk, err := strconv.Atoi(fields[3])
	if err != nil {
		return Header{}, nil, errors.ErrBadHeader
	}

	h := Header{
		Mode:     Mode(fields[0]),
		Encoding: Encoding(fields[1]),
		Nb:       nb,
		Nk:       nk,
		Char:     CharMarker(fields[4]),
	}
	if err := h.validate(); err != nil {
		return Header{}, nil, err
	}

	return h, rest, nil
}

// SelectDefaultMode implements the encrypt-side default mode
// selection of §4.9: OCB for plaintexts under 20,000 bytes, CBC
// otherwise. Callers may override this choice.
func SelectDefaultMode(plaintextLen int) Mode {
	if plaintextLen < 20000 {
		return ModeOCB
	}
	return ModeCBC
}
