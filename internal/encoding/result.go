package encoding

// Status tags the outcome of decoding a single codeword.
type Status int

const (
	StatusClean Status = iota
	// StatusCorrectedParity means only the overall parity bit was flipped.
	StatusCorrectedParity
	StatusCorrected
	StatusDoubleError
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusCorrectedParity:
		return "corrected-parity"
	case StatusCorrected:
		return "corrected"
	case StatusDoubleError:
		return "double-error"
	default:
		return "unknown"
	}
}

type Result struct {
	// Data is only meaningful when Status is not StatusDoubleError.
	Data     uint32
	Codeword uint32
	Syndrome uint32
	Status   Status
	// Position is the flipped codeword bit, -1 if none was corrected.
	Position int
}

func (r Result) Err() error {
	if r.Status == StatusDoubleError {
		return ErrDoubleError
	}
	return nil
}

// Corrected reports whether decoding had to flip a bit.
func (r Result) Corrected() bool {
	return r.Status == StatusCorrected || r.Status == StatusCorrectedParity
}
