package logger

import (
	"fmt"
	"io"
	"log"
)

// Logger is a subscription logger: every message goes to the
// underlying log.Logger (io.Discard by default) and to the
// optional hook set with SetOnLog.
type Logger struct {
	onLog  func(format string, a ...any)
	logger *log.Logger
	prefix string
}

func NewLogger() *Logger {
	return &Logger{
		logger: log.New(io.Discard, "", log.Default().Flags()),
	}
}

func (l *Logger) SetPrefix(prefix string) {
	l.logger.SetPrefix(prefix)
	l.prefix = fmt.Sprintf("%s: ", prefix)
}

func (l *Logger) GetPrefix() string {
	return l.logger.Prefix()
}

func (l *Logger) Writer() io.Writer {
	return l.logger.Writer()
}

func (l *Logger) SetOutput(writer io.Writer) {
	l.logger.SetOutput(writer)
}

// SetOnLog sets a hook that receives every logged message.
func (l *Logger) SetOnLog(hook func(format string, a ...any)) {
	l.onLog = hook
}

func (l *Logger) Log(format string, a ...any) {
	newFmt := l.prefix + format
	if l.onLog != nil {
		l.onLog(newFmt, a...)
	}
	l.logger.Printf(newFmt+"\n", a...)
}
