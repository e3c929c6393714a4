package cmd

import (
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode a data word into a codeword",
	Long: `Encode a data word below 2^26 into its 32 bit codeword and print both bit
patterns. Values may be given in decimal, hex (0x), octal (0o) or binary (0b).`,
	Args: cobra.ExactArgs(1),
	RunE: encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	value, err := parseData(args[0])
	if err != nil {
		return err
	}
	h, err := encoding.Encode(value)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printValue(out, value)
	printCodeword(out, h)
	return nil
}
