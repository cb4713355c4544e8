package galois128

import "testing"

func TestTripleDoubleCommute(t *testing.T) {
	x := [BlockSize]byte{0xff, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	left := Triple(Triple(Double(x)))
	right := Double(Triple(Triple(x)))

	if left != right {
		t.Fatalf("triple(triple(double(x))) = %x, want double(triple(triple(x))) = %x", left, right)
	}
}

func TestDoubleIsLinear(t *testing.T) {
	a := [BlockSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	b := [BlockSize]byte{200, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 200, 15, 16}

	left := Double(Xor(a, b))
	right := Xor(Double(a), Double(b))

	if left != right {
		t.Fatalf("double(a^b) = %x, want double(a)^double(b) = %x", left, right)
	}
}

func TestDoubleReducesOnTopBitCarry(t *testing.T) {
	var x [BlockSize]byte
	x[0] = 0x80

	got := Double(x)

	var want [BlockSize]byte
	want[BlockSize-1] = reductionByte

	if got != want {
		t.Fatalf("Double(0x80,0,...) = %x, want %x", got, want)
	}
}

func TestDoubleNoCarryIsPlainShift(t *testing.T) {
	var x [BlockSize]byte
	x[0] = 0x01

	got := Double(x)

	var want [BlockSize]byte
	want[0] = 0x02

	if got != want {
		t.Fatalf("Double = %x, want %x", got, want)
	}
}
