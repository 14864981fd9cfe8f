// Package logger holds the process-wide zap logger. Packages take a named
// child with Named; the package-level helpers log to the root.
package logger

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log discards everything until Init runs, so tests need no setup.
	Log = zap.NewNop()
	// Sugar mirrors Log for printf-style calls.
	Sugar = Log.Sugar()
)

// FileConfig describes the rotating log file. An empty Path disables it.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig rotates at 10MB, keeping three compressed backups for
// two weeks.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// Init logs to stdout at level, and also to logFile when it is set.
func Init(level string, logFile string) error {
	fc := FileConfig{}
	if logFile != "" {
		fc = DefaultFileConfig(logFile)
	}
	return InitWithFileConfig(level, fc, true)
}

// InitWithFileConfig replaces Log and Sugar. Tests pass console=false to
// keep stdout clean.
func InitWithFileConfig(level string, fc FileConfig, console bool) error {
	lvl := parseLevel(level)

	var cores []zapcore.Core
	if console {
		// Terminal lines: short clock, colored level.
		enc := encoder(zapcore.TimeEncoderOfLayout("15:04:05"), zapcore.CapitalColorLevelEncoder)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
	}
	if fc.Path != "" {
		enc := encoder(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotating(fc)), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()
	return nil
}

func encoder(clock zapcore.TimeEncoder, level zapcore.LevelEncoder) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       clock,
		EncodeLevel:      level,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})
}

func rotating(fc FileConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   fc.Compress,
		LocalTime:  true,
	}
}

// parseLevel accepts zap's level names. Unknown names mean info, and the
// panic and fatal levels are capped at error.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	if lvl > zapcore.ErrorLevel {
		return zapcore.ErrorLevel
	}
	return lvl
}

// Named returns a child of Log for one component, e.g. "session".
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

// Vec3 logs a vector as an {x, y, z} object.
func Vec3(key string, v mgl32.Vec3) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat32("x", v.X())
		enc.AddFloat32("y", v.Y())
		enc.AddFloat32("z", v.Z())
		return nil
	}))
}

// Sync flushes buffered entries. Errors from syncing a terminal are
// expected and dropped.
func Sync() {
	_ = Log.Sync()
}

func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }
