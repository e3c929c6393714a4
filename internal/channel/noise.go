package channel

import (
	"encoding/binary"
	"math/bits"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"golang.org/x/crypto/sha3"
)

var customization = []byte("secded-noise")

// Noise is a reproducible source of data words and bit errors. Two Noise
// values built from the same seed produce the same sequence.
type Noise struct {
	seed   string
	stream sha3.ShakeHash
	buf    [4]byte
}

func NewNoise(seed string) *Noise {
	return &Noise{
		seed:   seed,
		stream: sha3.NewCShake256(customization, []byte(seed)),
	}
}

// Fork derives an independent stream for worker i.
func (self *Noise) Fork(i uint64) *Noise {
	stream := sha3.NewCShake256(customization, []byte(self.seed))
	index := make([]byte, 8)
	binary.LittleEndian.PutUint64(index, i)
	stream.Write(index)
	return &Noise{
		seed:   self.seed,
		stream: stream,
	}
}

func (self *Noise) Uint32() uint32 {
	self.stream.Read(self.buf[:])
	return binary.LittleEndian.Uint32(self.buf[:])
}

// Word returns a data word that fits into the code.
func (self *Noise) Word() uint32 {
	return self.Uint32() & encoding.MaxData
}

// Pattern returns an error mask with flips distinct bits set.
func (self *Noise) Pattern(flips int) uint32 {
	if flips >= encoding.CodeBits {
		return 0xffffffff
	}
	var mask uint32
	for bits.OnesCount32(mask) < flips {
		mask |= 1 << (self.Uint32() % encoding.CodeBits)
	}
	return mask
}
