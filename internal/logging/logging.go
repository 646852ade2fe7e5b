package logging

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger; it discards output until InitLogger runs
var Logger = zap.NewNop().Sugar()

// InitLogger replaces Logger with a console logger at debug level when
// debug is set, info level otherwise
func InitLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = logger.Sugar()
}

// Sync flushes buffered log entries
func Sync() {
	_ = Logger.Sync()
}
