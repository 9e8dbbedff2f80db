// Package logger is the process-wide zerolog console logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	console = newConsoleWriter(os.Stderr)
	root    = zerolog.New(console).With().Timestamp().Logger().Level(zerolog.Level(DefaultLogLevel))
)

// SetOutput redirects log output. Color is disabled for writers other than
// stdout and stderr, and follows $TERM for those two.
func SetOutput(output io.Writer) {
	console.Out = output
	console.NoColor = !isTerminal(output) || os.Getenv("TERM") == ""
}

func isTerminal(w io.Writer) bool {
	return w == io.Writer(os.Stderr) || w == io.Writer(os.Stdout)
}

// Component returns a child logger tagged with the given component name.
// The child keeps the level that was set when it was created.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}

// Debug starts a new message with debug level.
//
// You must call Msg on the returned event in order to send the event.
func Debug() *zerolog.Event {
	return root.Debug()
}

// Info starts a new message with info level.
//
// You must call Msg on the returned event in order to send the event.
func Info() *zerolog.Event {
	return root.Info()
}

// Warning starts a new message with warn level.
//
// You must call Msg on the returned event in order to send the event.
func Warning() *zerolog.Event {
	return root.Warn()
}

// Err starts a new message with error level with err as a field if not nil or
// with info level if err is nil.
//
// You must call Msg on the returned event in order to send the event.
func Err(err error) *zerolog.Event {
	return root.Err(err)
}

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called by the Msg method, which terminates the program immediately.
//
// You must call Msg on the returned event in order to send the event.
func Fatal() *zerolog.Event {
	return root.Fatal()
}
