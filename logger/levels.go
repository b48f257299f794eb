package logger

import "log/slog"

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel maps a level name (debug, info, warn, error) to a Level. The
// second return value is false for unknown names, in which case
// DefaultLevel is returned.
func ParseLevel(name string) (Level, bool) {
	level, ok := levelNames[name]
	if !ok {
		return DefaultLevel, false
	}
	return level, true
}

// Output format of the logger.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)
