package rijndael

import "context"

// BlockCipher provides single-block encryption and decryption for a
// fixed Nb/Nk/Nr configuration. Implementations are not safe for
// concurrent use on the same instance: SetKey mutates the round-key
// schedule.
type BlockCipher interface {
	// SetKey expands key into the round-key schedule. key must be
	// exactly Nk*4 bytes long.
	SetKey(ctx context.Context, key []byte) error
	// EncryptBlock encrypts a single Nb*4-byte block.
	EncryptBlock(ctx context.Context, block []byte) ([]byte, error)
	// DecryptBlock decrypts a single Nb*4-byte block.
	DecryptBlock(ctx context.Context, block []byte) ([]byte, error)
	// BlockSize returns Nb*4, the block size in bytes.
	BlockSize() int
}

var _ BlockCipher = (*Cipher)(nil)
