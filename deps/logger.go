package deps

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("orders")

// Everything except the message has a custom color which is dependent on
// the log level.
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000}  %{pid} %{module}	%{shortfile}	▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
)

var leveled logging.LeveledBackend

func IgniteLogger(container Deps) (Deps, error) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled = logging.AddModuleLevel(formatter)
	logging.SetBackend(leveled)

	level := "INFO"
	if container.ConfigProvider != nil {
		level = container.ConfigProvider.UString("log.level", level)
	}
	if err := SetLevel(level); err != nil {
		return container, err
	}
	container.LoggerProvider = log
	return container, nil
}

// SetLevel changes the level of every module logger.
func SetLevel(name string) error {
	level, err := logging.LogLevel(strings.ToUpper(name))
	if err != nil {
		return err
	}
	if leveled == nil {
		logging.SetLevel(level, "")
		return nil
	}
	leveled.SetLevel(level, "")
	return nil
}
