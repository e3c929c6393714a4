package encoding

// parityTable holds one bit per nibble value, set when the nibble has an odd
// number of ones.
const parityTable uint32 = 0x6996

// Parity reports whether v has an odd number of set bits.
// See https://graphics.stanford.edu/~seander/bithacks.html#ParityParallel
func Parity(v uint32) bool {
	v ^= v >> 16
	v ^= v >> 8
	v ^= v >> 4
	v &= 0xf
	return (parityTable>>v)&1 == 1
}

func parityBit(v uint32) uint32 {
	if Parity(v) {
		return 1
	}
	return 0
}
