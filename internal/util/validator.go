package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePointValue coerces a decoded JSON value into an integer point
// value. Numbers must be whole; strings are parsed as base-10 integers.
// Anything else (null, missing, booleans, objects) is an error.
func ParsePointValue(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("point value must be a whole number, got %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("point value must be a number, got %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("point value must be a number, got %T", v)
	}
}

// NormalizeRepeat maps a raw repeat tag to its stored form:
// "" becomes "as_needed", "null"/"none" become nil (no recurrence
// tracking) and anything else is lower-cased and trimmed.
func NormalizeRepeat(raw string) *string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "null", "none":
		return nil
	case "":
		s = "as_needed"
	}
	return &s
}

// allowed avatar file extensions
var allowedAvatarExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// MaxAvatarSize is the avatar upload limit in bytes.
const MaxAvatarSize = 5 * 1024 * 1024

// AvatarExt extracts and validates the extension of an uploaded avatar
// filename. The second result is false when the extension is missing or
// not in the allow-list.
func AvatarExt(filename string) (string, bool) {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	return ext, allowedAvatarExts[ext]
}
