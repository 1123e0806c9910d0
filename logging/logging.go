package logging

import (
	"fmt"
	"log"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var currentLevel = InfoLevel

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// SetLogLevel adjusts the minimum level of criticality which Logf will emit
func SetLogLevel(level int) {
	currentLevel = level
}

// GetLogLevel returns the minimum level of criticality which Logf will emit
func GetLogLevel() int {
	return currentLevel
}

// Logf logs a message at the given level of criticality, discarding it if the
// level is below the one configured with SetLogLevel
func Logf(level int, format string, args ...interface{}) {
	if level < currentLevel {
		return
	}
	log.Printf("%s: %s", LogLevelToString(level), fmt.Sprintf(format, args...))
}
