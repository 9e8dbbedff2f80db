package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

type Level zerolog.Level

const (
	// TraceLevel defines trace log level.
	TraceLevel = Level(zerolog.TraceLevel)
	// DebugLevel defines debug log level.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel defines info log level.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarningLevel defines warn log level.
	WarningLevel = Level(zerolog.WarnLevel)
	// ErrorLevel defines error log level.
	ErrorLevel = Level(zerolog.ErrorLevel)
	// Disabled disables the logger.
	Disabled = Level(zerolog.Disabled)
)

const DefaultLogLevel = InfoLevel

// ParseLevel accepts the zerolog level names plus "warning" and "off".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return WarningLevel, nil
	case "off", "none":
		return Disabled, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return DefaultLogLevel, InvalidLevelError(s)
	}
	if l == zerolog.NoLevel {
		return DefaultLogLevel, nil
	}
	return Level(l), nil
}

func LogLevel() Level {
	return Level(root.GetLevel())
}

func SetLogLevel(level Level) {
	root = root.Level(zerolog.Level(level))
}

func (l Level) String() string {
	return zerolog.Level(l).String()
}

type InvalidLevelError string

func (e InvalidLevelError) Error() string {
	return "logger: Unknown log level " + string(e)
}
