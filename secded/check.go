package secded

import (
	"context"
	"fmt"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	log "github.com/JEONJIHO817/secded-hamming-31-26/log"
	"github.com/JEONJIHO817/secded-hamming-31-26/probing"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("Checker")
}

type Failure struct {
	Value   uint32
	Pattern probing.Pattern
	Result  encoding.Result
}

type Outcome struct {
	Strategy string
	Probes   int
	Failures []Failure
}

func (self Outcome) Passed() bool {
	return len(self.Failures) == 0
}

// Report holds the outcome of every strategy run against one data word.
type Report struct {
	Value    uint32
	Codeword uint32
	Outcomes []Outcome
}

func (self *Report) Passed() bool {
	for _, outcome := range self.Outcomes {
		if !outcome.Passed() {
			return false
		}
	}
	return true
}

// Check encodes value, applies every error pattern of every strategy to the
// codeword and verifies what the decoder makes of it.
func Check(value uint32, strategies []probing.Strategy) (*Report, error) {
	h, err := encoding.Encode(value)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Value:    value,
		Codeword: h,
		Outcomes: make([]Outcome, 0, len(strategies)),
	}
	for _, strat := range strategies {
		outcome := Outcome{Strategy: strat.Name()}
		for _, pattern := range strat.Patterns() {
			res := encoding.Inspect(pattern.Apply(h))
			outcome.Probes++
			if !strat.Verify(value, res) {
				logger.WithField("strategy", strat.Name()).WithField("value", value).WithField("pattern", pattern.String()).WithField("status", res.Status).Warn("probe failed")
				outcome.Failures = append(outcome.Failures, Failure{
					Value:   value,
					Pattern: pattern,
					Result:  res,
				})
			}
		}
		logger.WithField("strategy", strat.Name()).WithField("probes", outcome.Probes).Debug("strategy done")
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

type RangeReport struct {
	Start    uint64
	End      uint64
	Checked  uint64
	Probes   uint64
	Failures []Failure
}

func (self *RangeReport) Passed() bool {
	return len(self.Failures) == 0
}

const rangeProgress uint64 = 1 << 20

// CheckRange runs Check on every data word in [start, end).
func CheckRange(ctx context.Context, start uint64, end uint64, strategies []probing.Strategy) (*RangeReport, error) {
	report := &RangeReport{
		Start: start,
		End:   end,
	}
	for value := start; value < end; value++ {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}
		if value > uint64(encoding.MaxData) {
			return report, fmt.Errorf("%w: %d", encoding.ErrOutOfRange, value)
		}
		single, err := Check(uint32(value), strategies)
		if err != nil {
			return report, err
		}
		report.Checked++
		for _, outcome := range single.Outcomes {
			report.Probes += uint64(outcome.Probes)
			report.Failures = append(report.Failures, outcome.Failures...)
		}
		if report.Checked%rangeProgress == 0 {
			logger.WithField("checked", report.Checked).WithField("value", value).Info("range progress")
		}
	}
	return report, nil
}
