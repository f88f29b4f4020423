package config

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggersMu sync.Mutex
	loggers   []*logrus.Logger
	level     = logrus.InfoLevel
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	l := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{DisableTimestamp: true},
			Name:          name,
		},
		Hooks:        make(logrus.LevelHooks),
		ReportCaller: true,
		ExitFunc:     os.Exit,
	}
	loggersMu.Lock()
	l.SetLevel(level)
	loggers = append(loggers, l)
	loggersMu.Unlock()
	return l
}

// SetLevel parses lvl ("debug", "info", ...) and applies it to every logger
// created so far and to those created later.
func SetLevel(lvl string) error {
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	loggersMu.Lock()
	defer loggersMu.Unlock()
	level = parsed
	for _, l := range loggers {
		l.SetLevel(parsed)
	}
	return nil
}

// CustomTextFormatter prefixes messages with the logger name and call site.
type CustomTextFormatter struct {
	logrus.TextFormatter
	Name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	e := entry.Dup()
	e.Level = entry.Level
	e.Message = entry.Message
	if entry.HasCaller() {
		e.Message = fmt.Sprintf("[%s %-12s:%03d] %s", f.Name, path.Base(entry.Caller.File), entry.Caller.Line, entry.Message)
	} else {
		e.Message = fmt.Sprintf("[%s] %s", f.Name, entry.Message)
	}
	// e has no Caller, so the call site is not printed twice
	return f.TextFormatter.Format(e)
}
