package secded

import (
	"fmt"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/spf13/viper"
)

type Config struct {
	Value      uint64
	Strategies []string
	Trials     int
	Flips      int
	Workers    int
	Seed       string
	LogLevel   string
	Logfile    string
	RangeStart uint64
	RangeEnd   uint64
}

func init() {
	SetDefaults()
}

// SetDefaults (re)registers the default settings with viper.
func SetDefaults() {
	viper.SetDefault("Value", 12345678)
	viper.SetDefault("Strategies", []string{"single", "double"})
	viper.SetDefault("Trials", 10000)
	viper.SetDefault("Flips", 1)
	viper.SetDefault("Workers", 4)
	viper.SetDefault("Seed", "secded")
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("Logfile", "")
	viper.SetDefault("RangeStart", 0)
	viper.SetDefault("RangeEnd", 0)
}

// SetConfig reads configFile into viper. An empty name keeps the defaults.
func SetConfig(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	logger.WithField("file", configFile).Debug("config loaded")
	return nil
}

func NewConfig() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decoding config: %w", err)
	}
	if config.RangeEnd == 0 {
		config.RangeEnd = FullRangeEnd
	}
	return config, config.Validate()
}

// FullRangeEnd is the exclusive end of the data word range. A RangeEnd of 0
// stands for it.
const FullRangeEnd = uint64(encoding.MaxData) + 1

func (self Config) Validate() error {
	if self.Value > uint64(encoding.MaxData) {
		return fmt.Errorf("%w: value %d", encoding.ErrOutOfRange, self.Value)
	}
	if self.Trials < 0 {
		return fmt.Errorf("trials must not be negative, got %d", self.Trials)
	}
	if self.Flips < 0 || self.Flips > encoding.CodeBits {
		return fmt.Errorf("flips must be within [0, %d], got %d", encoding.CodeBits, self.Flips)
	}
	if self.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", self.Workers)
	}
	end := self.RangeEnd
	if end == 0 {
		end = FullRangeEnd
	}
	if end > FullRangeEnd {
		return fmt.Errorf("%w: range end %d", encoding.ErrOutOfRange, end)
	}
	if self.RangeStart > end {
		return fmt.Errorf("range start %d is after range end %d", self.RangeStart, end)
	}
	return nil
}
