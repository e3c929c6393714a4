package format

import (
	"fmt"
	"strings"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
)

const (
	MarkData          byte = 'd'
	MarkParity        byte = 'p'
	MarkOverallParity byte = 'P'
)

// Bits renders the low width bits of v, most significant first.
func Bits(v uint32, width int) string {
	return fmt.Sprintf("%.*b", width, uint64(v)&(1<<width-1))
}

// Layout returns the role of codeword position pos.
func Layout(pos int) byte {
	switch {
	case pos == 0:
		return MarkOverallParity
	case encoding.IsParityPosition(pos):
		return MarkParity
	default:
		return MarkData
	}
}

// DataLegend marks the data bits of a 32 bit rendering of a data word.
func DataLegend() string {
	return strings.Repeat(" ", encoding.CodeBits-encoding.DataBits) +
		strings.Repeat(string(MarkData), encoding.DataBits)
}

// CodeLegend marks the data positions of a rendered codeword.
func CodeLegend() string {
	return legend(func(pos int) bool { return Layout(pos) == MarkData }, MarkData)
}

// ParityLegend marks the parity positions of a rendered codeword, the overall
// parity bit included.
func ParityLegend() string {
	return legend(func(pos int) bool { return Layout(pos) != MarkData }, MarkParity)
}

func legend(match func(int) bool, mark byte) string {
	var builder strings.Builder
	for pos := encoding.CodeBits - 1; pos >= 0; pos-- {
		if match(pos) {
			builder.WriteByte(mark)
		} else {
			builder.WriteByte(' ')
		}
	}
	return strings.TrimRight(builder.String(), " ")
}

// Highlight renders a codeword with the bits set in mask replaced by '_'.
func Highlight(h uint32, mask uint32) string {
	out := []byte(Bits(h, encoding.CodeBits))
	for pos := 0; pos < encoding.CodeBits; pos++ {
		if mask&(1<<pos) != 0 {
			out[encoding.CodeBits-1-pos] = '_'
		}
	}
	return string(out)
}
