package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"path,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Prepare returns the program logger. Console output goes to stdout below
// error level and to stderr from error level up; the optional file logger
// receives everything at its own level. The returned closer releases the
// log file.
func (conf *LoggingConfig) Prepare(stdout, stderr io.Writer) (*zap.Logger, func() error, error) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoderLP := zapcore.NewConsoleEncoder(ec)
	consoleEncoderHP := newEncoder(ec) // filter errorVerbose

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	below := func(min zapcore.Level) zap.LevelEnablerFunc {
		return func(lvl zapcore.Level) bool { return min <= lvl && lvl < zapcore.ErrorLevel }
	}

	var consoleCoreHP, consoleCoreLP zapcore.Core
	switch conf.ConsoleLogger.Level {
	case "normal":
		consoleCoreLP = zapcore.NewCore(consoleEncoderLP, zapcore.AddSync(stdout), below(zapcore.InfoLevel))
		consoleCoreHP = zapcore.NewCore(consoleEncoderHP, zapcore.AddSync(stderr), highPriority)
	case "debug":
		consoleCoreLP = zapcore.NewCore(consoleEncoderLP, zapcore.AddSync(stdout), below(zapcore.DebugLevel))
		consoleCoreHP = zapcore.NewCore(consoleEncoderHP, zapcore.AddSync(stderr), highPriority)
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	var (
		fileCore = zapcore.NewNopCore()
		closer   = func() error { return nil }
		logLevel zap.AtomicLevel
	)
	switch conf.FileLogger.Level {
	case "debug":
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "normal":
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if conf.FileLogger.Level == "debug" || conf.FileLogger.Level == "normal" {
		flags := os.O_CREATE | os.O_WRONLY
		if conf.FileLogger.Mode == "overwrite" {
			flags |= os.O_TRUNC
		} else {
			flags |= os.O_APPEND
		}
		f, err := os.OpenFile(conf.FileLogger.Destination, flags, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		fileEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		fileCore = zapcore.NewCore(fileEncoder, zapcore.Lock(f), logLevel)
		closer = f.Close
	}

	return zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore)).Named("kontrolluppgift"), closer, nil
}

// When logging an error to the console do not print the verbose form.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			f.Interface = errors.New(f.Interface.(error).Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
