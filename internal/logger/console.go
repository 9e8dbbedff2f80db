package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorRed = iota + 31
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorBold = 1
)

func newConsoleWriter(output io.Writer) *zerolog.ConsoleWriter {
	cw := &zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.TimeOnly,
		NoColor:    os.Getenv("TERM") == "",
	}
	cw.FormatLevel = levelFormatter(cw)
	return cw
}

func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func levelFormatter(cw *zerolog.ConsoleWriter) zerolog.Formatter {
	return func(i interface{}) string {
		ll, ok := i.(string)
		if !ok {
			if i == nil {
				return "[" + colorize("???", colorBold, cw.NoColor) + "]"
			}
			return "[" + strings.ToUpper(fmt.Sprintf("%s", i))[0:3] + "]"
		}
		var l string
		switch ll {
		case "trace":
			l = colorize("Trace", colorCyan, cw.NoColor)
		case "debug":
			l = colorize("Debug", colorBlue, cw.NoColor)
		case "info":
			l = colorize("Info", colorGreen, cw.NoColor)
		case "warn":
			l = colorize("Warning", colorYellow, cw.NoColor)
		case "error":
			l = colorize(colorize("Error", colorRed, cw.NoColor), colorBold, cw.NoColor)
		case "fatal":
			l = colorize(colorize("Fatal", colorMagenta, cw.NoColor), colorBold, cw.NoColor)
		case "panic":
			l = colorize(colorize("Panic", colorMagenta, cw.NoColor), colorBold, cw.NoColor)
		default:
			l = colorize("???", colorBold, cw.NoColor)
		}
		return "[" + l + "]"
	}
}
