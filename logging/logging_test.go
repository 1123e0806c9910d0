package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevelToString(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "DEBUG", LogLevelToString(DebugLevel))
	require.Equal(t, "INFO", LogLevelToString(InfoLevel))
	require.Equal(t, "WARN", LogLevelToString(WarnLevel))
	require.Equal(t, "ERROR", LogLevelToString(ErrorLevel))
	require.Equal(t, "FATAL", LogLevelToString(FatalLevel))
}

func TestLogfRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	prev := GetLogLevel()
	defer SetLogLevel(prev)

	SetLogLevel(WarnLevel)
	Logf(DebugLevel, "hidden %d", 1)
	Logf(ErrorLevel, "shown %d", 2)
	out := buf.String()
	require.False(t, strings.Contains(out, "hidden"))
	require.True(t, strings.Contains(out, "ERROR: shown 2"))
}
