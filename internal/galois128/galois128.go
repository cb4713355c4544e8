// Package galois128 implements the GF(2^128) doubling and tripling
// operations used by OCB2's offset sequence and by PMAC, per §4.5.
package galois128

// BlockSize is the only block size OCB2 and PMAC operate over: 16
// bytes (128 bits), independent of the underlying cipher's Nb.
const BlockSize = 16

// reductionByte is XORed into the low byte after a left shift whose
// top bit carried out, reducing modulo x^128+x^7+x^2+x+1 (0x87).
const reductionByte = 0x87

// Double interprets x as a 128-bit big-endian polynomial and computes
// x*α in GF(2^128). x must be exactly BlockSize bytes.
func Double(x [BlockSize]byte) [BlockSize]byte {
	var out [BlockSize]byte
	carry := x[0]&0x80 != 0
	for i := 0; i < BlockSize-1; i++ {
		out[i] = (x[i] << 1) | (x[i+1] >> 7)
	}
	out[BlockSize-1] = x[BlockSize-1] << 1
	if carry {
		out[BlockSize-1] ^= reductionByte
	}
	return out
}

// Triple computes x*α XOR x = Double(x) XOR x.
func Triple(x [BlockSize]byte) [BlockSize]byte {
	d := Double(x)
	var out [BlockSize]byte
	for i := range out {
		out[i] = d[i] ^ x[i]
	}
	return out
}

// Xor computes a XOR b over two blocks.
func Xor(a, b [BlockSize]byte) [BlockSize]byte {
	var out [BlockSize]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
