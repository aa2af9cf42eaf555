package logx

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync/atomic"
)

// ============================================================================
// Levels
// ============================================================================

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var std = log.New(os.Stdout, "", log.LstdFlags)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel establece el nivel mínimo de log
func SetLevel(level Level) {
	currentLevel.Store(int32(level))
}

func enabled(level Level) bool {
	return int32(level) >= currentLevel.Load()
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ============================================================================
// Plain logging
// ============================================================================

func logAt(level Level, msg string) {
	if !enabled(level) {
		return
	}
	std.Printf("[%s] %s", level, msg)
}

func Debug(msg string)                  { logAt(LevelDebug, msg) }
func Info(msg string)                   { logAt(LevelInfo, msg) }
func Warn(msg string)                   { logAt(LevelWarn, msg) }
func Error(msg string)                  { logAt(LevelError, msg) }
func Debugf(format string, args ...any) { logAt(LevelDebug, fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { logAt(LevelInfo, fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { logAt(LevelWarn, fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { logAt(LevelError, fmt.Sprintf(format, args...)) }

// Fatalf loguea y termina el proceso
func Fatalf(format string, args ...any) {
	std.Printf("[FATAL] %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}

// ============================================================================
// Structured fields
// ============================================================================

// Fields son pares clave-valor adjuntos a una entrada de log
type Fields map[string]any

// Entry es un logger con campos pre-adjuntados
type Entry struct {
	fields Fields
}

// WithFields crea una entrada con campos estructurados
func WithFields(fields Fields) *Entry {
	return &Entry{fields: fields}
}

func (e *Entry) format(msg string) string {
	if len(e.fields) == 0 {
		return msg
	}
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.fields[k])
	}
	return b.String()
}

func (e *Entry) Debugf(format string, args ...any) {
	logAt(LevelDebug, e.format(fmt.Sprintf(format, args...)))
}

func (e *Entry) Infof(format string, args ...any) {
	logAt(LevelInfo, e.format(fmt.Sprintf(format, args...)))
}

func (e *Entry) Warnf(format string, args ...any) {
	logAt(LevelWarn, e.format(fmt.Sprintf(format, args...)))
}

func (e *Entry) Errorf(format string, args ...any) {
	logAt(LevelError, e.format(fmt.Sprintf(format, args...)))
}
