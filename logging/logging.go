package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"orbitview/config"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// Setup builds the root logger: a console core on stderr and, when a file is
// configured, a JSON core on a rotating file. The returned func flushes both.
func Setup(cfg config.LogConfig) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, nil, err
		}
	}
	levelFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Dev {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), levelFilter),
	}

	var logfile *lumberjack.Logger
	if cfg.File != "" {
		logfile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		jsonEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.AddSync(logfile), levelFilter))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development())
	}
	rootLogger = zap.New(zapcore.NewTee(cores...), opts...)
	rootLogger.Debug("Logging initialized", zap.String("level", level.String()), zap.String("file", cfg.File))

	logger := rootLogger
	return logger, func() {
		_ = logger.Sync()
		if logfile != nil {
			_ = logfile.Close()
		}
	}, nil
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok || l == nil {
		return rootLogger
	}
	return l
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}
