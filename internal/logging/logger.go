package logging

// Leveled logging for breathe

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

var levelNames = map[string]LogLevel{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"info":    LogLevelInfo,
	"verbose": LogLevelVerbose,
	"debug":   LogLevelDebug,
}

// ParseLevel converts a level name to a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LogLevelError, fmt.Errorf("unknown log level %q (use silent, error, info, verbose or debug)", name)
	}
	return level, nil
}

func (l LogLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Logger provides leveled logging. Stdout belongs to the status line, so
// console output always goes to stderr.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	console *log.Logger
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:   level,
		console: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Discard returns a logger that never writes anything
func Discard() *Logger {
	return &Logger{level: LogLevelSilent, console: log.New(io.Discard, "", 0)}
}

// Close closes the log file if one is open
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.write(fmt.Sprintf("ERROR: "+format, v...), true)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.write(fmt.Sprintf("INFO: "+format, v...), false)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.write(fmt.Sprintf("VERBOSE: "+format, v...), false)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.write(fmt.Sprintf("DEBUG: "+format, v...), false)
	}
}

func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	// Info lines only reach the console at verbose and above so they do not
	// tear through the in-place status line.
	if isError || l.level >= LogLevelVerbose {
		l.console.Println(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogStartup logs session start information
func (l *Logger) LogStartup(technique, pattern string, cycleSeconds int, configPath string) {
	l.Info("Starting breathing session")
	l.Verbose("  Technique: %s", technique)
	l.Verbose("  Pattern: %s", pattern)
	l.Verbose("  Cycle: %d seconds", cycleSeconds)
	if configPath != "" {
		l.Verbose("  Config: %s", configPath)
	}
}

// LogPhase logs a phase transition
func (l *Logger) LogPhase(round, index int, name string, seconds int) {
	l.Debug("round %d phase %d: %s (%ds)", round, index, name, seconds)
}
