// Package common contains logging and version info shared by every other package.
package common

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger. It is a no-op logger until InitLog is called.
var Log = zap.S()

const timeLayout = "15:04:05.000"

// InitLog initialises the global logger and redirects the standard library's
// log output to it. The level is debug if the DEBUG environment variable is
// set to a true value, info otherwise.
func InitLog() (*zap.SugaredLogger, error) {
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = timeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	cfg.Level.SetLevel(zapcore.InfoLevel)
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	log, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, err
	}

	zap.RedirectStdLog(log)

	Log = log.Sugar()
	return Log, nil
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	type appendTimeEncoder interface {
		AppendTimeLayout(time.Time, string)
	}

	if enc, ok := enc.(appendTimeEncoder); ok {
		enc.AppendTimeLayout(t, timeLayout)
		return
	}

	enc.AppendString(t.Format(timeLayout))
}
