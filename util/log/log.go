// package log defines a small leveled logger, which is referenced from
// https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a logging level. Only two levels exist, info and debug.
type Level int

const (
	InfoLevel  Level = iota // output only Info*
	DebugLevel              // output all, Info* and Debug*
)

func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ErrUnknownLevel is returned by ParseLevel for an unsupported level name.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts level name, "info" or "debug", into Level.
// Letter case is ignored.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// DebugPrefix is put between the logger prefix and the message on Debug*.
const DebugPrefix = "DEBUG: "

// ErrOutputDiscardedByLevel indicates log output is discarded by level, e.g. Debug() with info level.
var ErrOutputDiscardedByLevel = errors.New("log output discarded by different log level")

// Logger outputs at info or debug level.
// Output errors are not returned to the caller, the latest one
// is recorded internally and can be retrieved later from Err().
type Logger struct {
	logger *log.Logger

	mu          sync.Mutex
	level       Level // under the mutex.
	internalErr error
}

// New constructs Logger with InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  InfoLevel,
	}
}

func (l *Logger) output(calldepth int, level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < level {
		l.internalErr = ErrOutputDiscardedByLevel
		return
	}
	if level == DebugLevel {
		msg = DebugPrefix + msg
	}
	l.internalErr = l.logger.Output(calldepth, msg)
}

func (l *Logger) Info(v ...interface{})   { l.output(3, InfoLevel, fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{}) { l.output(3, InfoLevel, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(3, InfoLevel, fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(v ...interface{})   { l.output(3, DebugLevel, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) { l.output(3, DebugLevel, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(3, DebugLevel, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// same as standard package's log
func (l *Logger) SetFlags(flag int)       { l.logger.SetFlags(flag) }
func (l *Logger) Flags() int              { return l.logger.Flags() }
func (l *Logger) SetPrefix(prefix string) { l.logger.SetPrefix(prefix) }
func (l *Logger) Prefix() string          { return l.logger.Prefix() }

// Err returns the result of the last output.
// A past failure is forgotten once a later output succeeds:
//
//	logger.Info("1") --> something error
//	logger.Info("2") --> no erorr
//	logger.Err() --> nil
//
// Debug() discarded by InfoLevel makes Err() return ErrOutputDiscardedByLevel.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.internalErr
}

const (
	// These flags are same as log package's.
	Ldate         = log.Ldate
	Ltime         = log.Ltime
	Lmicroseconds = log.Lmicroseconds
	Llongfile     = log.Llongfile
	Lshortfile    = log.Lshortfile
	LUTC          = log.LUTC
	LstdFlags     = log.LstdFlags
)

var std = New(os.Stderr, "", LstdFlags)

func Info(v ...interface{})                 { std.output(3, InfoLevel, fmt.Sprint(v...)) }
func Infoln(v ...interface{})               { std.output(3, InfoLevel, fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{}) { std.output(3, InfoLevel, fmt.Sprintf(format, v...)) }

func Debug(v ...interface{})   { std.output(3, DebugLevel, fmt.Sprint(v...)) }
func Debugln(v ...interface{}) { std.output(3, DebugLevel, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) {
	std.output(3, DebugLevel, fmt.Sprintf(format, v...))
}

func SetOutput(w io.Writer)   { std.SetOutput(w) }
func SetLevel(level Level)    { std.SetLevel(level) }
func GetLevel() Level         { return std.Level() }
func SetFlags(flag int)       { std.SetFlags(flag) }
func Flags() int              { return std.Flags() }
func SetPrefix(prefix string) { std.SetPrefix(prefix) }
func Prefix() string          { return std.Prefix() }
func Err() error              { return std.Err() }

// LimitWriter returns a Writer that writes to w
// but stops with EOF after n bytes.
// The underlying implementation is a *LimitedWriter.
func LimitWriter(w io.Writer, n int64) io.Writer { return &LimitedWriter{w, n} }

// A LimitedWriter writes to W but limits the amount of
// data written to just N bytes. Each call to Write
// updates N to reflect the new amount remaining.
// Write returns EOF when N <= 0.
type LimitedWriter struct {
	W io.Writer // underlying writer
	N int64     // max bytes remaining
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.W.Write(p)
	l.N -= int64(n)
	return
}
