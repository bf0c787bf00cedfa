// FILE: lixenwraith/dailylog/constant.go
package dailylog

import (
	"strconv"
	"strings"
)

// Level is the ordinal severity of a log message
type Level int

// Log level constants, ordered by severity
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = [...]string{
	LevelDebug:    "Debug",
	LevelInfo:     "Info",
	LevelWarning:  "Warning",
	LevelError:    "Error",
	LevelCritical: "Critical",
}

// String returns the name written between brackets in a log line
func (lv Level) String() string {
	if lv.valid() {
		return levelNames[lv]
	}
	return "Level(" + strconv.Itoa(int(lv)) + ")"
}

func (lv Level) valid() bool {
	return lv >= LevelDebug && lv <= LevelCritical
}

// ParseLevel converts a level name or ordinal string to a Level
func ParseLevel(levelStr string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(levelStr))
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "crit":
		return LevelCritical, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).valid() {
		return Level(n), nil
	}
	return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warning, error, critical)", levelStr)
}

// UnmarshalText lets decoders fill a Level from its name
func (lv *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*lv = parsed
	return nil
}

// MarshalText writes the level name
func (lv Level) MarshalText() ([]byte, error) {
	return []byte(lv.String()), nil
}

// File naming
const (
	dayLayout   = "20060102"
	splitLayout = "150405"
	lineLayout  = "15:04:05"
)

// Storage
const (
	// Size multiplier for MiB
	sizeMultiplier = 1024 * 1024
	dirPerm        = 0755
	filePerm       = 0644
)
