package testfixtures

import (
	"fmt"
	"sync"
)

// Logger collects log lines in memory.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *Logger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }
