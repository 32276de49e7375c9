package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/brewpoints/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces zap's global logger. Console output is colored for a
// terminal, json output is meant for log collectors.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[strings.ToLower(conf.LogLvl)]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoderConfig, err := newEncoderConfig(conf.LogFormat)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding(conf.LogFormat),
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.With(zap.String("service", "brewpoints")))

	return nil
}

func encoding(format string) string {
	if format == "" {
		return "console"
	}
	return strings.ToLower(format)
}

func newEncoderConfig(format string) (zapcore.EncoderConfig, error) {
	ec := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	switch encoding(format) {
	case "console":
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		ec.CallerKey = "caller"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeLevel = zapcore.LowercaseLevelEncoder
		ec.EncodeCaller = zapcore.ShortCallerEncoder
	default:
		return ec, fmt.Errorf("unsupported log format: %s", format)
	}
	return ec, nil
}
