package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerName(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	logger := NewLogger("Hamming")
	logger.Warn("hello")
	assert.Contains(t, buf.String(), "name=Hamming")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetLevel("warn")

	require.NoError(t, SetLevel("error"))
	NewLogger("test").Warn("suppressed")
	assert.Empty(t, buf.String())

	require.NoError(t, SetLevel("debug"))
	NewLogger("test").Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	assert.Error(t, SetLevel("loud"))
}

func TestLevelEnabled(t *testing.T) {
	defer SetLevel("warn")
	logger := NewLogger("test")

	require.NoError(t, SetLevel("warn"))
	assert.False(t, logger.TraceEnabled())
	assert.False(t, logger.DebugEnabled())

	require.NoError(t, SetLevel("debug"))
	assert.False(t, logger.TraceEnabled())
	assert.True(t, logger.DebugEnabled())

	require.NoError(t, SetLevel("trace"))
	assert.True(t, logger.TraceEnabled())
}

func TestAddTracer(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer ResetHooks()

	path := filepath.Join(t.TempDir(), "secded")
	AddTracer(path)
	NewLogger("tracer").WithField("syndrome", 5).Warn("double bit error")

	content, err := os.ReadFile(path + ".warn")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"syndrome":5`)
	assert.Contains(t, string(content), `"name":"tracer"`)
}
