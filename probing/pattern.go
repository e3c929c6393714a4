package probing

import (
	"math/bits"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/format"
)

// Pattern is an error mask; every set bit flips the codeword bit at the same
// position.
type Pattern uint32

func NewPattern(positions ...int) Pattern {
	var p Pattern
	for _, pos := range positions {
		p |= 1 << pos
	}
	return p
}

func (self Pattern) Apply(h uint32) uint32 {
	return h ^ uint32(self)
}

func (self Pattern) Weight() int {
	return bits.OnesCount32(uint32(self))
}

func (self Pattern) Positions() []int {
	out := make([]int, 0, self.Weight())
	for pos := 0; pos < encoding.CodeBits; pos++ {
		if self&(1<<pos) != 0 {
			out = append(out, pos)
		}
	}
	return out
}

func (self Pattern) String() string {
	return format.Bits(uint32(self), encoding.CodeBits)
}
