package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level mirrors the subset of zerolog levels the application uses.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	logger     zerolog.Logger
	loggerOnce sync.Once
)

// initLogger initializes the global logger to write to stderr with timestamps.
func initLogger() {
	loggerOnce.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
}

func SetLevel(l Level) {
	initLogger()
	switch l {
	case LevelDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case LevelInfo:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case LevelError:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
}

func Debug(msg string, kv ...any) {
	initLogger()
	logger.Debug().Fields(pairs(kv)).Msg(msg)
}

func Info(msg string, kv ...any) {
	initLogger()
	logger.Info().Fields(pairs(kv)).Msg(msg)
}

func Error(msg string, err error, kv ...any) {
	initLogger()
	logger.Error().Err(err).Fields(pairs(kv)).Msg(msg)
}

// pairs drops a trailing odd element so zerolog never sees a dangling key.
func pairs(kv []any) []any {
	if len(kv)%2 != 0 {
		return kv[:len(kv)-1]
	}
	return kv
}
