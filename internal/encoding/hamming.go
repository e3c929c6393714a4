package encoding

import (
	"errors"
	"fmt"

	log "github.com/JEONJIHO817/secded-hamming-31-26/log"
	"github.com/sirupsen/logrus"
)

// Hamming(31, 26) plus a total parity bit at position 0 for double error
// detection.
// https://en.wikipedia.org/wiki/Hamming_code#General_algorithm
const (
	DataBits   = 26
	CodeBits   = 32
	ParityBits = 5

	// MaxData is the largest encodable data word.
	MaxData uint32 = 1<<DataBits - 1
)

var (
	ErrOutOfRange  = errors.New("data word does not fit into 26 bits")
	ErrDoubleError = errors.New("double bit error detected")
)

// segment moves a contiguous run of data bits to the code positions between
// two neighbouring parity bits.
type segment struct {
	mask  uint32
	shift uint
}

var (
	covers   [ParityBits]uint32
	segments []segment
	logger   *log.Logger
)

func init() {
	logger = log.NewLogger("Hamming")

	for k := 0; k < ParityBits; k++ {
		for pos := 0; pos < CodeBits; pos++ {
			if pos&(1<<k) != 0 {
				covers[k] |= 1 << pos
			}
		}
	}

	dataBit := 0
	for k := 1; k < ParityBits; k++ {
		lo := 1<<k + 1
		hi := 1 << (k + 1)
		if hi > CodeBits {
			hi = CodeBits
		}
		n := hi - lo
		segments = append(segments, segment{
			mask:  (1<<n - 1) << dataBit,
			shift: uint(lo - dataBit),
		})
		dataBit += n
	}
	if dataBit != DataBits {
		panic(fmt.Sprintf("hamming layout holds %d data bits, want %d", dataBit, DataBits))
	}
}

// IsParityPosition reports whether codeword bit pos carries a Hamming parity
// bit or the overall parity bit.
func IsParityPosition(pos int) bool {
	return pos&(pos-1) == 0
}

func scatter(d uint32) uint32 {
	var h uint32
	for _, s := range segments {
		h |= (d & s.mask) << s.shift
	}
	return h
}

func gather(h uint32) uint32 {
	var d uint32
	for _, s := range segments {
		d |= (h >> s.shift) & s.mask
	}
	return d
}

func syndrome(h uint32) uint32 {
	var i uint32
	for k, cover := range covers {
		i |= parityBit(h&cover) << k
	}
	return i
}

// Encode maps a 26 bit data word to its 32 bit codeword. Words that do not fit
// into 26 bits are rejected with ErrOutOfRange.
func Encode(d uint32) (uint32, error) {
	if d > MaxData {
		return 0, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, d, uint32(1)<<DataBits)
	}
	h := scatter(d)
	for k, cover := range covers {
		h |= parityBit(h&cover) << (uint(1) << k)
	}
	return h | parityBit(h), nil
}

// Decode recovers the data word from a codeword with at most one flipped bit.
// Two flipped bits yield ErrDoubleError.
func Decode(h uint32) (uint32, error) {
	res := Inspect(h)
	if err := res.Err(); err != nil {
		return 0, err
	}
	return res.Data, nil
}

// Inspect runs syndrome decoding on h and reports what it found.
func Inspect(h uint32) Result {
	p := Parity(h)
	i := syndrome(h)
	res := Result{
		Codeword: h,
		Syndrome: i,
		Position: -1,
	}
	switch {
	case i == 0 && !p:
		res.Status = StatusClean
	case i == 0:
		res.Status = StatusCorrectedParity
		res.Position = 0
	case p:
		h ^= 1 << i
		res.Status = StatusCorrected
		res.Position = int(i)
		if logger.TraceEnabled() {
			logger.WithFields(logrus.Fields{"position": i, "codeword": h}).Trace("corrected single bit error")
		}
	default:
		res.Status = StatusDoubleError
		if logger.DebugEnabled() {
			logger.WithFields(logrus.Fields{"syndrome": i, "codeword": h}).Debug("double bit error")
		}
		return res
	}
	res.Data = gather(h)
	return res
}
