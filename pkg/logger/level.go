package logger

import (
	"os"
	"strings"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

var envToLevel = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"error":    LevelError,
	"fatal":    LevelFatal,
	"critical": LevelFatal,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
	"f": LevelFatal,
	"c": LevelFatal,
}

var levelEnvKeys = []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"}

func init() {
	if level, ok := lookupLevelFromENV(); ok {
		Default.Level = level
	}
}

// ParseLevel maps a textual level, as accepted in the LOG_LEVEL environment variable, to a Level.
func ParseLevel(raw string) (Level, bool) {
	level, ok := envToLevel[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}

func lookupLevelFromENV() (Level, bool) {
	for _, envKey := range levelEnvKeys {
		if raw, ok := os.LookupEnv(envKey); ok {
			if level, ok := ParseLevel(raw); ok {
				return level, ok
			}
		}
	}
	return "", false
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,
}

func isLevelEnabled(target, level Level) bool {
	if target == "" {
		target = LevelInfo
	}
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}
