package cmd

import (
	"fmt"
	"io"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/format"
)

func printValue(out io.Writer, value uint32) {
	fmt.Fprintf(out, "value: %d\n", value)
	fmt.Fprintf(out, "binary:\n")
	fmt.Fprintf(out, "\t%s\n", format.DataLegend())
	fmt.Fprintf(out, "\t%s\n", format.Bits(value, encoding.CodeBits))
}

func printCodeword(out io.Writer, h uint32) {
	fmt.Fprintf(out, "encoded:\n")
	fmt.Fprintf(out, "\t%s\n", format.CodeLegend())
	fmt.Fprintf(out, "\t%s\n", format.Bits(h, encoding.CodeBits))
	fmt.Fprintf(out, "\t%s\n", format.ParityLegend())
	fmt.Fprintf(out, "hex: %#08x\n", h)
}
