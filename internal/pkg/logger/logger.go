package logger

import (
	"io"
	"log"
	"os"
)

// StdLogger writes levelled lines through a log.Logger. Output is suppressed
// entirely unless verbose mode is on, so normal runs print nothing but the
// generated prompt blocks.
type StdLogger struct {
	verbose bool
	out     *log.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return NewStdTo(os.Stderr, verbose)
}

// NewStdTo creates a StdLogger writing to w. Tests use this to capture
// output.
func NewStdTo(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{
		verbose: verbose,
		out:     log.New(w, "", log.LstdFlags),
	}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[ERROR]", msg, err, fields)
}

func (l *StdLogger) emit(level, msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println(level, msg, fields)
}
