package logging

import (
	"fmt"
	"io"

	"github.com/apsdehal/go-logger"
)

// Level maps a -v count to a logger level: 0 warning, 1 info, 2 debug.
func Level(verbosity int) (logger.LogLevel, error) {
	switch verbosity {
	case 0:
		return logger.WarningLevel, nil
	case 1:
		return logger.InfoLevel, nil
	case 2:
		return logger.DebugLevel, nil
	default:
		return 0, fmt.Errorf("unknown verbosity level %d", verbosity)
	}
}

// New builds a colorless logger for module writing to out.
func New(module string, verbosity int, out io.Writer) (*logger.Logger, error) {
	level, err := Level(verbosity)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(module, 0, out, level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
