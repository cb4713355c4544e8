package rijndael

import "github.com/masterkusok/rijndaelbox/internal/galois"

// State bytes are laid out column-major: byte index = row + 4*col, for
// row in [0,4) and col in [0,nb).

// addRoundKey XORs a flattened Nb-word round key into state in place.
func addRoundKey(state, roundKey []byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}

func subBytes(state []byte) {
	for i, b := range state {
		state[i] = galois.Sbox[b]
	}
}

func invSubBytes(state []byte) {
	for i, b := range state {
		state[i] = galois.InvSbox[b]
	}
}

// shiftOffset returns the ShiftRows offset for the given row under the
// given Nb. Rows 1/2/3 shift by (1,2,3) for Nb in {4,6}, and by
// (1,3,4) for Nb = 8; the generic (col+row) mod Nb formula used by
// most textbook implementations only happens to match this for Nb = 8
// on row 1, not rows 2 and 3.
func shiftOffset(row, nb int) int {
	if row == 0 {
		return 0
	}
	if nb == 8 {
		return []int{0, 1, 3, 4}[row]
	}
	return row
}

func shiftRows(state []byte, nb int) {
	orig := append([]byte(nil), state...)
	for row := 0; row < 4; row++ {
		off := shiftOffset(row, nb)
		for col := 0; col < nb; col++ {
			src := (col + off) % nb
			state[row+4*col] = orig[row+4*src]
		}
	}
}

func invShiftRows(state []byte, nb int) {
	orig := append([]byte(nil), state...)
	for row := 0; row < 4; row++ {
		off := shiftOffset(row, nb)
		for col := 0; col < nb; col++ {
			src := ((col-off)%nb + nb) % nb
			state[row+4*col] = orig[row+4*src]
		}
	}
}

// mixColumns applies the MixColumns matrix to every column using the
// precomputed lmul2/lmul3 tables.
func mixColumns(state []byte, nb int) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := state[4*col], state[4*col+1], state[4*col+2], state[4*col+3]
		state[4*col+0] = galois.Lmul2[a0] ^ galois.Lmul3[a1] ^ a2 ^ a3
		state[4*col+1] = a0 ^ galois.Lmul2[a1] ^ galois.Lmul3[a2] ^ a3
		state[4*col+2] = a0 ^ a1 ^ galois.Lmul2[a2] ^ galois.Lmul3[a3]
		state[4*col+3] = galois.Lmul3[a0] ^ a1 ^ a2 ^ galois.Lmul2[a3]
	}
}

// invMixColumns applies the inverse MixColumns matrix using the
// precomputed lmul9/11/13/14 tables.
func invMixColumns(state []byte, nb int) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := state[4*col], state[4*col+1], state[4*col+2], state[4*col+3]
		state[4*col+0] = galois.Lmul14[a0] ^ galois.Lmul11[a1] ^ galois.Lmul13[a2] ^ galois.Lmul9[a3]
		state[4*col+1] = galois.Lmul9[a0] ^ galois.Lmul14[a1] ^ galois.Lmul11[a2] ^ galois.Lmul13[a3]
		state[4*col+2] = galois.Lmul13[a0] ^ galois.Lmul9[a1] ^ galois.Lmul14[a2] ^ galois.Lmul11[a3]
		state[4*col+3] = galois.Lmul11[a0] ^ galois.Lmul13[a1] ^ galois.Lmul9[a2] ^ galois.Lmul14[a3]
	}
}
