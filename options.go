// Package rijndaelbox is the library's top-level entry point: Encrypt
// and Decrypt wire the rijndael/blockmode/kdf/container packages
// together into the text container format described in the package's
// design documentation. There is no CLI or environment-variable
// surface at this layer.
package rijndaelbox

import (
	"github.com/asaskevich/govalidator"
	"github.com/masterkusok/rijndaelbox/container"
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/random"
)

// Mode selects the chaining/authentication mode. ModeAuto defers to
// container.SelectDefaultMode based on plaintext length.
type Mode int

// Mode values.
const (
	ModeAuto Mode = iota
	ModeCBC
	ModeOCB
)

// Encoding selects the payload's text representation.
type Encoding int

// Encoding values.
const (
	EncodingBase64 Encoding = iota
	EncodingRaw
)

// CharMarker is stored in the container header and round-tripped
// without interpretation; it is never decoded as an encoding hint by
// this package.
type CharMarker byte

// CharMarker values, matching the header grammar's CHR field.
const (
	CharUnibyte   CharMarker = 'U'
	CharMultibyte CharMarker = 'M'
)

// Options configures Encrypt. The zero value selects automatic mode
// selection and base64 encoding, but is not valid as a whole: Nb, Nk
// and CharMarker have no valid zero value and are rejected by Encrypt.
// Use DefaultOptions for ready-to-use values.
type Options struct {
	Mode Mode

	// Nb is the block size in 32-bit words; must be 4, 6, or 8.
	Nb int `valid:"required"`
	// Nk is the key size in 32-bit words; must be 4, 6, or 8.
	Nk int `valid:"required"`

	Encoding   Encoding
	CharMarker CharMarker

	// Random supplies the IV. Nil selects random.Default.
	Random random.Source
}

// DefaultOptions returns the library's defaults: automatic mode
// selection, Nb=4, Nk=4, base64 encoding, 'U' char marker, and
// crypto/rand-backed IVs.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeAuto,
		Nb:         4,
		Nk:         4,
		Encoding:   EncodingBase64,
		CharMarker: CharUnibyte,
	}
}

func validWordCount(n int) bool { return n == 4 || n == 6 || n == 8 }

// validate checks opts against the constraints the header grammar
// imposes, following the teacher's govalidator.ValidateStruct pattern
// for the fields govalidator can express and a manual check for the
// enumerated word-count fields govalidator's struct tags don't model
// well. OCB forces Nb=4 regardless of opts.Nb (see resolveNb), so Nb
// is not cross-checked against Mode here.
func (opts Options) validate() error {
	if _, err := govalidator.ValidateStruct(opts); err != nil {
		return err
	}
	if !validWordCount(opts.Nb) {
		return errors.ErrInvalidBlockSize
	}
	if !validWordCount(opts.Nk) {
		return errors.ErrInvalidKeyLength
	}
	if opts.Mode < ModeAuto || opts.Mode > ModeOCB {
		return errors.ErrBadHeader
	}
	if opts.Encoding != EncodingBase64 && opts.Encoding != EncodingRaw {
		return errors.ErrBadHeader
	}
	if opts.CharMarker != CharUnibyte && opts.CharMarker != CharMultibyte {
		return errors.ErrBadHeader
	}
	return nil
}

// resolveNb returns the block size the cipher must actually use for
// mode: OCB2 is only defined for Nb=4 (§4.7), so OCB silently forces
// Nb=4 independent of opts.Nb rather than rejecting other values, per
// spec.md §6 ("Nb: {4,6,8} (default 4; forced to 4 for OCB)"). CBC
// uses opts.Nb as given.
func resolveNb(mode container.Mode, nb int) int {
	if mode == container.ModeOCB {
		return 4
	}
	return nb
}
