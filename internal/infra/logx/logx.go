package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

// ParseLevel maps a level name to a Level; unknown names yield LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

const (
	maxMsgLen     = 2 * 1024 // non-verbose limit for messages and string fields
	redactedMark  = "[REDACTED]"
	truncatedMark = "… [truncated]"
)

var (
	mu       sync.RWMutex
	level    = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger   = newLogger(io.Discard)
	secrets  []string
	redactor = strings.NewReplacer()
	verbose  bool
)

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	logger = newLogger(w)
	mu.Unlock()
}

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { level.SetLevel(l.zap()) }

// SetVerbose disables truncation when v is true.
func SetVerbose(v bool) { mu.Lock(); verbose = v; mu.Unlock() }

func Verbose() bool { mu.RLock(); defer mu.RUnlock(); return verbose }

// RegisterSecret masks s in every later message and string field.
func RegisterSecret(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	secrets = append(secrets, s)
	pairs := make([]string, 0, 2*len(secrets))
	for _, sec := range secrets {
		pairs = append(pairs, sec, redactedMark)
	}
	redactor = strings.NewReplacer(pairs...)
}

// RegisterSecrets registers each non-empty entry of list.
func RegisterSecrets(list []string) {
	for _, s := range list {
		RegisterSecret(s)
	}
}

// StdlogWriter wraps writes as structured JSON lines at a fixed level.
// It applies redaction and optional truncation when verbose is disabled.
func StdlogWriter(lvl Level, w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return &stdlogWriter{level: lvl, log: newLogger(w)}
}

type stdlogWriter struct {
	level Level
	log   *zap.Logger
}

func (sw *stdlogWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		emit(sw.log, sw.level, string(line), nil)
	}
	return len(p), nil
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) { emit(current(), LevelDebug, fmt.Sprintf(format, args...), nil) }

// Infof logs an info message.
func Infof(format string, args ...any) { emit(current(), LevelInfo, fmt.Sprintf(format, args...), nil) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { emit(current(), LevelWarn, fmt.Sprintf(format, args...), nil) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { emit(current(), LevelError, fmt.Sprintf(format, args...), nil) }

// Log emits msg with structured fields nested under "fields".
func Log(lvl Level, msg string, fields map[string]any) { emit(current(), lvl, msg, fields) }

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func emit(l *zap.Logger, lvl Level, msg string, fields map[string]any) {
	ce := l.Check(lvl.zap(), "")
	if ce == nil {
		return
	}
	v := Verbose()
	msg = redact(msg)
	if !v {
		msg = truncate(msg, maxMsgLen)
	}
	ce.Message = msg

	var zf []zap.Field
	if len(fields) > 0 {
		zf = make([]zap.Field, 0, len(fields)+1)
		zf = append(zf, zap.Namespace("fields"))
		for k, val := range fields {
			if s, ok := val.(string); ok {
				s = redact(s)
				if !v {
					s = truncate(s, maxMsgLen)
				}
				val = s
			}
			zf = append(zf, zap.Any(k, val))
		}
	}
	ce.Write(zf...)
}

func redact(s string) string {
	mu.RLock()
	r := redactor
	mu.RUnlock()
	return r.Replace(s)
}

// truncate shortens s to at most limit bytes, keeping a short tail. Cuts
// land on rune boundaries.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	const tailLen = 10
	if limit <= len(truncatedMark)+tailLen {
		return s[:runeStart(s, limit)]
	}
	head := s[:runeStart(s, limit-len(truncatedMark)-tailLen)]
	tail := s[runeStart(s, len(s)-tailLen):]
	return head + truncatedMark + tail
}

// runeStart backs i up to the start of the rune containing it.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
