package secded

import (
	"context"
	"errors"
	"testing"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/JEONJIHO817/secded-hamming-31-26/probing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStrategies(t *testing.T) []probing.Strategy {
	t.Helper()
	strats, err := probing.NewStrategies([]string{probing.NameNone, probing.NameSingle, probing.NameDouble})
	require.NoError(t, err)
	return strats
}

func TestCheck(t *testing.T) {
	for _, value := range []uint32{0, 12345678, encoding.MaxData} {
		report, err := Check(value, allStrategies(t))
		require.NoError(t, err)
		assert.True(t, report.Passed(), "value %d", value)
		assert.Equal(t, value, report.Value)
		require.Len(t, report.Outcomes, 3)
		assert.Equal(t, 1, report.Outcomes[0].Probes)
		assert.Equal(t, 32, report.Outcomes[1].Probes)
		assert.Equal(t, 496, report.Outcomes[2].Probes)
	}
}

func TestCheckOutOfRange(t *testing.T) {
	_, err := Check(1<<26, allStrategies(t))
	assert.True(t, errors.Is(err, encoding.ErrOutOfRange))
}

// expectsDouble claims every single flip must be reported as a double error.
type expectsDouble struct {
	probing.StrategySingle
}

func (self *expectsDouble) Verify(want uint32, res encoding.Result) bool {
	return res.Status == encoding.StatusDoubleError
}

func TestCheckRecordsFailures(t *testing.T) {
	report, err := Check(7, []probing.Strategy{&expectsDouble{*probing.NewSingleProbing()}})
	require.NoError(t, err)
	assert.False(t, report.Passed())
	failures := report.Outcomes[0].Failures
	require.Len(t, failures, 32)
	assert.Equal(t, uint32(7), failures[0].Value)
	assert.Equal(t, probing.NewPattern(0), failures[0].Pattern)
	assert.Equal(t, encoding.StatusCorrectedParity, failures[0].Result.Status)
}

func TestCheckRange(t *testing.T) {
	report, err := CheckRange(context.Background(), 0, 64, allStrategies(t))
	require.NoError(t, err)
	assert.True(t, report.Passed())
	assert.Equal(t, uint64(64), report.Checked)
	assert.Equal(t, uint64(64*(1+32+496)), report.Probes)

	report, err = CheckRange(context.Background(), uint64(encoding.MaxData)-3, uint64(encoding.MaxData)+1, allStrategies(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), report.Checked)

	_, err = CheckRange(context.Background(), uint64(encoding.MaxData), uint64(encoding.MaxData)+2, allStrategies(t))
	assert.True(t, errors.Is(err, encoding.ErrOutOfRange))
}

func TestCheckRangeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := CheckRange(ctx, 0, 1000, allStrategies(t))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), report.Checked)
}
