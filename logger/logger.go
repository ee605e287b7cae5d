package logger

import "go.uber.org/zap"

// Log is the process-wide logger. It defaults to a no-op logger so packages
// can log safely before main wires the real one (and in tests).
var Log = zap.NewNop()

// NewLogger builds the application logger and installs it as Log.
// env "development" selects the human-readable console encoder.
func NewLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}
