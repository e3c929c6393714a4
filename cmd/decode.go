package cmd

import (
	"fmt"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/format"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <codeword>",
	Short: "Decode a codeword, correcting one flipped bit",
	Long: `Decode a 32 bit codeword. A single flipped bit is corrected and reported,
two flipped bits make the command fail.`,
	Args: cobra.ExactArgs(1),
	RunE: decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	h, err := parseCodeword(args[0])
	if err != nil {
		return err
	}
	res := encoding.Inspect(h)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "codeword: %#08x\n", h)
	fmt.Fprintf(out, "\t%s\n", format.Bits(h, encoding.CodeBits))
	fmt.Fprintf(out, "syndrome: %d\n", res.Syndrome)
	fmt.Fprintf(out, "status: %s\n", res.Status)
	if err := res.Err(); err != nil {
		return err
	}
	if res.Corrected() {
		fmt.Fprintf(out, "corrected bit: %d\n", res.Position)
	}
	fmt.Fprintf(out, "data: %d\n", res.Data)
	return nil
}
