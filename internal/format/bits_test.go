package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert.Equal(t, "00000101", Bits(5, 8))
	assert.Equal(t, "101", Bits(0xd, 3))
	assert.Equal(t, "00000000101111000110000101001110", Bits(12345678, 32))
	assert.Equal(t, "11111111111111111111111111111111", Bits(0xffffffff, 32))
}

func TestLegends(t *testing.T) {
	assert.Equal(t, "      dddddddddddddddddddddddddd", DataLegend())
	assert.Equal(t, "ddddddddddddddd ddddddd ddd d", CodeLegend())
	assert.Equal(t, "               p       p   p ppp", ParityLegend())
}

func TestLayout(t *testing.T) {
	assert.Equal(t, MarkOverallParity, Layout(0))
	for _, pos := range []int{1, 2, 4, 8, 16} {
		assert.Equal(t, MarkParity, Layout(pos), "position %d", pos)
	}
	for _, pos := range []int{3, 5, 7, 9, 15, 17, 31} {
		assert.Equal(t, MarkData, Layout(pos), "position %d", pos)
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "0000000000000000000000000000_1_1", Highlight(0x5, 0xa))
}
