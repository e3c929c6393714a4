package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/format"
	"github.com/JEONJIHO817/secded-hamming-31-26/probing"
	"github.com/JEONJIHO817/secded-hamming-31-26/secded"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [value]",
	Short: "Flip every single bit and every pair of bits of an encoded word",
	Long: `Encode a data word (12345678 unless given), then flip every single bit and
every pair of distinct bits of the codeword. Single flips must decode to the
original word, pairs must be reported as double errors.

With --all the sweep runs over every word in [--start, --end).`,
	Args: cobra.MaximumNArgs(1),
	RunE: check,
}

func init() {
	flags := checkCmd.Flags()
	flags.StringSlice("strategies", []string{probing.NameSingle, probing.NameDouble}, "flip strategies to run (none, single, double)")
	flags.Bool("all", false, "check every data word in [--start, --end)")
	flags.Uint64("start", 0, "first data word checked by --all")
	flags.Uint64("end", 0, "end of the --all range, 0 means 2^26")
	flags.String("profile", "", "write a CPU profile into this directory")
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	}
	if len(args) > 0 {
		value, err := parseData(args[0])
		if err != nil {
			return err
		}
		viper.Set("Value", value)
	}
	config, err := secded.NewConfig()
	if err != nil {
		return err
	}
	strategies, err := probing.NewStrategies(config.Strategies)
	if err != nil {
		return err
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		return checkAll(cmd, config, strategies)
	}

	report, err := secded.Check(uint32(config.Value), strategies)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printValue(out, report.Value)
	printCodeword(out, report.Codeword)
	for _, outcome := range report.Outcomes {
		printOutcome(out, report.Codeword, outcome)
	}
	if !report.Passed() {
		return errCheckFailed
	}
	return nil
}

func printOutcome(out io.Writer, h uint32, outcome secded.Outcome) {
	fmt.Fprintf(out, "%s bit errors:\n", outcome.Strategy)
	if outcome.Passed() {
		fmt.Fprintf(out, "\tpassed\n")
		return
	}
	for _, failure := range outcome.Failures {
		fmt.Fprintf(out, "\t%s bit error fail: %d, %v, %s\n", outcome.Strategy, failure.Value, failure.Pattern.Positions(), failure.Result.Status)
		fmt.Fprintf(out, "\t%s\n", format.Highlight(h, uint32(failure.Pattern)))
	}
}

func checkAll(cmd *cobra.Command, config secded.Config, strategies []probing.Strategy) error {
	report, err := secded.CheckRange(commandContext(cmd), config.RangeStart, config.RangeEnd, strategies)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "range: [%d, %d)\n", report.Start, report.End)
	fmt.Fprintf(out, "words: %d\n", report.Checked)
	fmt.Fprintf(out, "probes: %d\n", report.Probes)
	if !report.Passed() {
		for _, failure := range report.Failures {
			fmt.Fprintf(out, "\tfail: %d, %v, %s\n", failure.Value, failure.Pattern.Positions(), failure.Result.Status)
		}
		return errCheckFailed
	}
	fmt.Fprintf(out, "\tpassed\n")
	return nil
}
