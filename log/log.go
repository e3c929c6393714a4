package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base *log.Logger

func init() {
	base = log.New()
	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	base.SetOutput(os.Stdout)
	base.SetLevel(log.WarnLevel)
}

// NewLogger returns a logger whose entries carry the module name. All loggers
// share one base, so SetLevel and AddTracer apply to every module.
func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func SetOutput(out io.Writer) {
	base.SetOutput(out)
}

// TraceEnabled reports whether trace entries reach any output. Hot paths
// check it before building an entry.
func (self *Logger) TraceEnabled() bool {
	return self.Logger.IsLevelEnabled(log.TraceLevel)
}

func (self *Logger) DebugEnabled() bool {
	return self.Logger.IsLevelEnabled(log.DebugLevel)
}
