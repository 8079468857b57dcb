package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Post length limits, counted in characters (runes).
const (
	MaxPostChars     = 500
	WarningThreshold = 450
	DangerThreshold  = 480
)

// CharLevel is the state of the compose character counter.
type CharLevel int

const (
	CharLevelNormal CharLevel = iota
	CharLevelWarning
	CharLevelDanger
)

func (l CharLevel) String() string {
	switch l {
	case CharLevelWarning:
		return "warning"
	case CharLevelDanger:
		return "danger"
	default:
		return "normal"
	}
}

// CountLevel maps a character count to the counter state.
func CountLevel(n int) CharLevel {
	switch {
	case n > DangerThreshold:
		return CharLevelDanger
	case n > WarningThreshold:
		return CharLevelWarning
	default:
		return CharLevelNormal
	}
}

// CharCount returns the number of characters in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateContent cuts s to MaxPostChars characters.
func TruncateContent(s string) string {
	if CharCount(s) <= MaxPostChars {
		return s
	}
	return string([]rune(s)[:MaxPostChars])
}

// FormatTimeOfDay turns "14:30:00" into "2:30 PM". Minutes are kept as
// given. Input that does not start with an hour is returned unchanged.
func FormatTimeOfDay(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return s
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return s
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], ampm)
}

// ValidTimeOfDay reports whether s is HH:MM or HH:MM:SS on a 24h clock.
func ValidTimeOfDay(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	limits := []int{23, 59, 59}
	for i, p := range parts {
		if len(p) != 2 {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return false
		}
	}
	return true
}

func equalPrefixFold(name, s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > len(name) {
		return false
	}
	return strings.EqualFold(name[:len(s)], s)
}
