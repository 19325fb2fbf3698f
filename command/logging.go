package command

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/tebeka/atexit"
)

var logFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} [%{module}] %{message}`)

func verbosityLevel(verbose int) logging.Level {
	switch {
	case verbose <= 0:
		return logging.WARNING
	case verbose == 1:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}

// configureLogging sends all log output to path, or to stderr when path is
// empty. Stdout is reserved for the stdio transport.
func configureLogging(verbose int, path string) error {
	var writer io.Writer = os.Stderr
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("log file %s: %w", path, err)
		}
		atexit.Register(func() {
			file.Close()
		})
		writer = file
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(writer, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(verbosityLevel(verbose), "")
	logging.SetBackend(leveled)
	return nil
}
