package cmd

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	log "github.com/JEONJIHO817/secded-hamming-31-26/log"
	"github.com/JEONJIHO817/secded-hamming-31-26/secded"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "secded",
	Short: "Hamming(31,26) SECDED codec for 26 bit data words",
	Long: `secded encodes 26 bit data words into 32 bit codewords that survive any
single flipped bit and report any two flipped bits.

The codeword carries five Hamming parity bits at positions 1, 2, 4, 8 and 16
and an overall parity bit at position 0.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("loglevel", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("logfile", "", "mirror log entries as JSON into <logfile>.{trace,info,warn}")
}

// configFlags maps viper keys to the flags that override them.
var configFlags = map[string]func() *pflag.Flag{
	"LogLevel":   func() *pflag.Flag { return rootCmd.PersistentFlags().Lookup("loglevel") },
	"Logfile":    func() *pflag.Flag { return rootCmd.PersistentFlags().Lookup("logfile") },
	"Strategies": func() *pflag.Flag { return checkCmd.Flags().Lookup("strategies") },
	"RangeStart": func() *pflag.Flag { return checkCmd.Flags().Lookup("start") },
	"RangeEnd":   func() *pflag.Flag { return checkCmd.Flags().Lookup("end") },
	"Trials":     func() *pflag.Flag { return simulateCmd.Flags().Lookup("trials") },
	"Flips":      func() *pflag.Flag { return simulateCmd.Flags().Lookup("flips") },
	"Workers":    func() *pflag.Flag { return simulateCmd.Flags().Lookup("workers") },
	"Seed":       func() *pflag.Flag { return simulateCmd.Flags().Lookup("seed") },
}

func bindConfig() error {
	for key, lookup := range configFlags {
		if err := viper.BindPFlag(key, lookup()); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := bindConfig(); err != nil {
		return err
	}
	if err := secded.SetConfig(cfgFile); err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	if err := log.SetLevel(viper.GetString("LogLevel")); err != nil {
		return err
	}
	if logfile := viper.GetString("Logfile"); logfile != "" {
		log.AddTracer(logfile)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseValue(arg string) (uint64, error) {
	value, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", arg, err)
	}
	return value, nil
}

// parseData accepts decimal, 0x, 0o and 0b notation for a data word.
func parseData(arg string) (uint32, error) {
	value, err := parseValue(arg)
	if err != nil {
		return 0, err
	}
	if value > uint64(encoding.MaxData) {
		return 0, fmt.Errorf("use a smaller number < %d: %w", secded.FullRangeEnd, encoding.ErrOutOfRange)
	}
	return uint32(value), nil
}

func parseCodeword(arg string) (uint32, error) {
	value, err := parseValue(arg)
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("codeword %d does not fit into %d bits", value, encoding.CodeBits)
	}
	return uint32(value), nil
}
