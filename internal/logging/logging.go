// Structured JSON logger (Zap + Lumberjack).
//
// One JSON log file under LOG_DIR with rotation handled by Lumberjack,
// teed to stdout as a readable console log. Installed as the process-wide
// default via zap.ReplaceGlobals; handlers use logging.L.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the process logger. A no-op logger stands in until Init runs.
var L = zap.NewNop().Sugar()

func Init(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "server.log"),
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileSink), zap.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), zap.InfoLevel),
	)

	z := zap.New(core, zap.ErrorOutput(zapcore.AddSync(fileSink)))
	zap.ReplaceGlobals(z)
	L = z.Sugar()
	return nil
}
