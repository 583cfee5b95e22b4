package flog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Level int

const None Level = -1
const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

var (
	minLevel atomic.Int64
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	exit               = os.Exit
)

func init() {
	minLevel.Store(int64(Info))
}

func SetLevel(l Level) { minLevel.Store(int64(l)) }

func GetLevel() Level { return Level(minLevel.Load()) }

// SetOutput redirects log lines. Stdout is left alone by default because the
// CLI writes encoded blobs there.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	out = w
	mu.Unlock()
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

func logf(level Level, format string, args ...any) {
	l := GetLevel()
	if l == None || level < l {
		return
	}

	now := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s\n", now, level.String(), fmt.Sprintf(format, args...))

	mu.Lock()
	_, _ = io.WriteString(out, line)
	mu.Unlock()
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case None:
		return "None"
	default:
		return "UNKNOWN"
	}
}

func Debugf(format string, args ...any) { logf(Debug, format, args...) }
func Infof(format string, args ...any)  { logf(Info, format, args...) }
func Warnf(format string, args ...any)  { logf(Warn, format, args...) }
func Errorf(format string, args ...any) { logf(Error, format, args...) }
func Fatalf(format string, args ...any) {
	logf(Fatal, format, args...)
	exit(1)
}
