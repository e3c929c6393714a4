package probing

import (
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
)

// StrategyDouble flips every pair of distinct codeword bits. Each pair must be
// detected and never decoded to a data word.
type StrategyDouble struct {
	patternLen int
}

func NewDoubleProbing() *StrategyDouble {
	return &StrategyDouble{
		patternLen: encoding.CodeBits,
	}
}

func (self *StrategyDouble) Name() string {
	return NameDouble
}

func (self *StrategyDouble) Patterns() []Pattern {
	out := make([]Pattern, 0, self.patternLen*(self.patternLen-1)/2)
	for j := 0; j < self.patternLen; j++ {
		for i := 0; i < j; i++ {
			out = append(out, NewPattern(i, j))
		}
	}
	return out
}

func (self *StrategyDouble) Verify(want uint32, res encoding.Result) bool {
	return res.Status == encoding.StatusDoubleError
}
