// Package logging adapts logrus to the slog-shaped core.Logger.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kilterboard/jwt-middleware/core"
)

const badKey = "!BADKEY"

// NewLogrus returns a core.Logger backed by l. Key/value pairs become
// logrus fields.
func NewLogrus(l logrus.FieldLogger) core.Logger {
	return &logrusLogger{l}
}

// Default returns a core.Logger writing to logrus' standard logger.
func Default() core.Logger {
	return NewLogrus(logrus.StandardLogger())
}

type logrusLogger struct{ l logrus.FieldLogger }

func (a *logrusLogger) Debug(msg string, args ...any) {
	a.l.WithFields(Fields(args)).Debug(msg)
}

func (a *logrusLogger) Info(msg string, args ...any) {
	a.l.WithFields(Fields(args)).Info(msg)
}

func (a *logrusLogger) Warn(msg string, args ...any) {
	a.l.WithFields(Fields(args)).Warn(msg)
}

func (a *logrusLogger) Error(msg string, args ...any) {
	a.l.WithFields(Fields(args)).Error(msg)
}

// Fields converts slog-style alternating key/value args. A trailing value
// without a key is stored under !BADKEY.
func Fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			f[badKey] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		value := args[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		f[key] = value
	}
	return f
}
