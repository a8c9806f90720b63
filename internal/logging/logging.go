// Package logging configures the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// sink is the log file opened by the last Initialize, nil for stdout/stderr
var sink *os.File

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level"`

	// Format is the output format (json, console)
	Format string `json:"format"`

	// Output is stdout, stderr or a file path
	Output string `json:"output"`

	// Development enables development mode
	Development bool `json:"development"`
}

// DefaultConfig returns the session defaults. Prompts share the terminal,
// so only warnings and errors are written unless asked otherwise.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the global logger. A log file held by the previous
// logger is closed once the new destination is open; on error the
// previous logger stays in place.
func Initialize(cfg Config) error {
	out, file, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), out, parseLevel(cfg.Level))

	if Logger != nil {
		_ = Logger.Sync()
	}
	if sink != nil {
		_ = sink.Close()
	}
	Logger = zap.New(core, opts...)
	sink = file
	return nil
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

// openOutput resolves a destination. The returned file is non-nil only
// when the caller owns a handle that must be closed later.
func openOutput(dest string) (zapcore.WriteSyncer, *os.File, error) {
	switch dest {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil, nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil, nil
	}

	f, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return zapcore.AddSync(f), f, nil
}

func useDefault() {
	_ = Initialize(DefaultConfig())
}

// Sync flushes the logger
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func init() {
	useDefault()
}
