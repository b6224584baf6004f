// Package logger provides zap logging for the viewer. Each engine subsystem
// logs through its own named Logger so console and file lines carry the
// subsystem (terrain, geometry, scene...) that produced them.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the root logger. It discards everything until Init or Configure.
var Log = zap.NewNop()

// Sugar is the sugared form of Log.
var Sugar = Log.Sugar()

// FileConfig controls the rotating log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig keeps a handful of small rotated files next to path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{Path: path, MaxSizeMB: 20, MaxBackups: 2, MaxAgeDays: 14, Compress: true}
}

// Options configures the global loggers.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
	// Console receives colored lines. Nil disables console output.
	Console io.Writer
	// File is used when File.Path is set.
	File FileConfig
}

// Logger is a subsystem logger. It follows Configure, so package-level
// loggers created before the viewer configures logging still write once it has.
type Logger struct {
	name string
	z    atomic.Pointer[zap.Logger]
}

var (
	mu      sync.Mutex
	named   = map[string]*Logger{}
	rootLog = &Logger{}
)

func init() {
	rootLog.bind(Log)
}

// Named returns the logger for subsystem name. Calls with the same name
// share one Logger.
func Named(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := named[name]; ok {
		return l
	}
	l := &Logger{name: name}
	l.bind(Log)
	named[name] = l
	return l
}

func (l *Logger) bind(root *zap.Logger) {
	z := root.WithOptions(zap.AddCallerSkip(1))
	if l.name != "" {
		z = z.Named(l.name)
	}
	l.z.Store(z)
}

// Name returns the subsystem name.
func (l *Logger) Name() string { return l.name }

// Zap returns the current underlying logger without the wrapper's caller skip.
func (l *Logger) Zap() *zap.Logger {
	return l.z.Load().WithOptions(zap.AddCallerSkip(-1))
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.z.Load().Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.z.Load().Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.z.Load().Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.z.Load().Error(msg, fields...) }

// Init logs to stdout at level and, if logFile is set, to a rotating file.
func Init(level, logFile string) error {
	opts := Options{Level: level, Console: os.Stdout}
	if logFile != "" {
		opts.File = DefaultFileConfig(logFile)
	}
	return Configure(opts)
}

// Configure replaces the root logger and rebinds every named Logger.
func Configure(opts Options) error {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	var cores []zapcore.Core
	if opts.Console != nil {
		enc := zapcore.NewConsoleEncoder(encoderConfig(true))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(opts.Console), lvl))
	}
	if f := opts.File; f.Path != "" {
		w := &lumberjack.Logger{
			Filename:   f.Path,
			MaxSize:    f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAge:     f.MaxAgeDays,
			Compress:   f.Compress,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(false))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
	}

	root := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	mu.Lock()
	defer mu.Unlock()
	Log = root
	Sugar = root.Sugar()
	rootLog.bind(root)
	for _, l := range named {
		l.bind(root)
	}
	return nil
}

// encoderConfig returns the line layout. Console lines use a short clock and
// colored levels; file lines carry the full timestamp.
func encoderConfig(console bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "subsystem",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if console {
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

// The package-level helpers log through the root logger, with no subsystem.

func Debug(msg string, fields ...zap.Field) { rootLog.z.Load().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { rootLog.z.Load().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { rootLog.z.Load().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { rootLog.z.Load().Error(msg, fields...) }

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) { rootLog.z.Load().Fatal(msg, fields...) }
