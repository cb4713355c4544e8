// Package errors represents some useful helpers for error-handling improvement.
package errors

import "fmt"

// ConstError is just a simple string error.
type ConstError string

// type check
var _ error = (*ConstError)(nil)

// Error implements [error] interface for ConstError.
func (e ConstError) Error() string {
	return string(e)
}

// Annotate wraps err with message unless err is nil.
func Annotate(err error, format string, args ...any) (annotated error) {
	if err == nil {
		return err
	}

	return fmt.Errorf(format, append(args, err)...)
}

// Sentinel errors for the Rijndael / CBC / OCB2 container stack.
//
// Invalid parameters are rejected before any cryptographic work
// happens; ErrAuthenticationFailed is returned only after the
// caller's candidate plaintext buffer has already been zeroized.
const (
	// ErrInvalidKeyLength is returned when a key's word count (Nk) is
	// not one of 4, 6, or 8.
	ErrInvalidKeyLength = ConstError("rijndaelbox: invalid key length")

	// ErrInvalidBlockSize is returned when a block's word count (Nb)
	// is not one of 4, 6, or 8, or when OCB2 is requested with Nb != 4.
	ErrInvalidBlockSize = ConstError("rijndaelbox: invalid block size")

	// ErrBadCiphertextLength is returned when a CBC ciphertext is not
	// a multiple of the block size, or a container is shorter than its
	// mandatory iv/tag prefix.
	ErrBadCiphertextLength = ConstError("rijndaelbox: ciphertext length is not a multiple of the block size")

	// ErrBadHeader is returned when a container's header line fails to
	// match the expected grammar.
	ErrBadHeader = ConstError("rijndaelbox: malformed container header")

	// ErrBadBase64 is returned when a container's payload fails to
	// base64-decode while its header declares base64 encoding.
	ErrBadBase64 = ConstError("rijndaelbox: payload is not valid base64")

	// ErrAuthenticationFailed is returned when an OCB2 tag does not
	// match the computed tag. The candidate plaintext MUST NOT be
	// surfaced to the caller when this error is returned.
	ErrAuthenticationFailed = ConstError("rijndaelbox: authentication failed")

	// ErrLengthPrefixMissing is returned when a decrypted CBC payload
	// does not begin with "<digits>\n".
	ErrLengthPrefixMissing = ConstError("rijndaelbox: length prefix missing from decrypted payload")
)
