package rijndael

import (
	"github.com/masterkusok/rijndaelbox/errors"
	"github.com/masterkusok/rijndaelbox/internal/galois"
)

// word is a 4-byte column of the key schedule.
type word [4]byte

// validNbNk reports whether n is one of the three Rijndael word counts.
func validNbNk(n int) bool {
	return n == 4 || n == 6 || n == 8
}

// numRounds returns Nr = max(Nb, Nk) + 6.
func numRounds(nb, nk int) int {
	if nb > nk {
		return nb + 6
	}
	return nk + 6
}

// rotWord cyclically shifts a word left by one byte: [a,b,c,d] -> [b,c,d,a].
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to every byte of a word.
func subWord(w word) word {
	return word{galois.Sbox[w[0]], galois.Sbox[w[1]], galois.Sbox[w[2]], galois.Sbox[w[3]]}
}

// expandKey runs the standard Rijndael key schedule and returns a flat
// sequence of Nb*(Nr+1) words. Rcon is tracked as a running byte,
// doubled in GF(2^8) on each use rather than recomputed from a table.
func expandKey(key []byte, nb int) ([]word, error) {
	if len(key)%4 != 0 {
		return nil, errors.ErrInvalidKeyLength
	}
	nk := len(key) / 4
	if !validNbNk(nk) {
		return nil, errors.ErrInvalidKeyLength
	}
	if !validNbNk(nb) {
		return nil, errors.ErrInvalidBlockSize
	}

	nr := numRounds(nb, nk)
	total := nb * (nr + 1)
	w := make([]word, total)

	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	rcon := byte(0x01)
	for i := nk; i < total; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon
			rcon = galois.Lmul2[rcon]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	return w, nil
}
