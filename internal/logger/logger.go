// Package logger backs the Fiber log facade with zap so that handlers keep
// calling log.Info / log.Warnf while output is structured.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	*zap.SugaredLogger
	level  zap.AtomicLevel
	asJSON bool
}

var _ log.AllLogger = (*zapLogger)(nil)

// Init builds a zap logger for the given level ("debug", "info", ...) and
// installs it as the Fiber default logger.
func Init(level string, asJSON bool) error {
	l, err := New(level, asJSON, os.Stdout)
	if err != nil {
		return err
	}
	log.SetLogger(l)
	return nil
}

func New(level string, asJSON bool, w io.Writer) (*zapLogger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	l := &zapLogger{level: zap.NewAtomicLevelAt(lvl), asJSON: asJSON}
	l.SugaredLogger = l.build(w)
	return l, nil
}

func (l *zapLogger) build(w io.Writer) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if l.asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), l.level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// zap has no trace level, trace goes to debug.
func (l *zapLogger) Trace(v ...interface{}) { l.Debug(v...) }

func (l *zapLogger) Tracef(format string, v ...interface{}) { l.Debugf(format, v...) }

func (l *zapLogger) Tracew(msg string, kv ...interface{}) { l.Debugw(msg, kv...) }

func (l *zapLogger) WithContext(_ context.Context) log.CommonLogger { return l }

func (l *zapLogger) SetLevel(level log.Level) {
	l.level.SetLevel(toZapLevel(level))
}

func (l *zapLogger) SetOutput(w io.Writer) {
	l.SugaredLogger = l.build(w)
}

func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelTrace, log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	case log.LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.PanicLevel
	}
}
