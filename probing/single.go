package probing

import (
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
)

// StrategySingle flips every codeword bit on its own. Each of them must be
// corrected.
type StrategySingle struct {
	patternLen int
}

func NewSingleProbing() *StrategySingle {
	return &StrategySingle{
		patternLen: encoding.CodeBits,
	}
}

func (self *StrategySingle) Name() string {
	return NameSingle
}

func (self *StrategySingle) Patterns() []Pattern {
	out := make([]Pattern, 0, self.patternLen)
	for i := 0; i < self.patternLen; i++ {
		out = append(out, NewPattern(i))
	}
	return out
}

func (self *StrategySingle) Verify(want uint32, res encoding.Result) bool {
	return res.Err() == nil && res.Corrected() && res.Data == want
}
