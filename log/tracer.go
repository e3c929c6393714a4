package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

const traceTimestampFormat = "Jan _2 2006 15:04:05.000000"

// AddTracer mirrors log entries as JSON into files next to path, one file per
// severity group.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.InfoLevel:  path + ".info",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: traceTimestampFormat,
		},
	)
	base.Hooks.Add(hook)
}

// ResetHooks drops every hook installed by AddTracer.
func ResetHooks() {
	base.ReplaceHooks(make(log.LevelHooks))
}
