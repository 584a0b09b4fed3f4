package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes Logger calls as zerolog events tagged with the
// calling component.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog logs JSON lines to writer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger logs human-readable lines to w. A nil w means stderr,
// leaving stdout free for tool output.
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologAdapter {
	if w == nil {
		w = os.Stderr
	}
	return NewZerolog(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"component"},
	}, level)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, message, fields)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, message, fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, message, fields)
}

// Error logs err under message. An empty message becomes "<component>
// failed".
func (z *ZerologAdapter) Error(component, message string, err error, fields map[string]interface{}) {
	if message == "" {
		message = component + " failed"
	}
	emit(z.logger.Error().Err(err), component, message, fields)
}

func emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	if fields != nil {
		event = event.Fields(fields)
	}
	event.Str("component", component).Msg(message)
}
