package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a spreadsheet cell into an integer.
// Non-numeric or blank cells become 0 rather than an error, matching the
// normalization contract for loaded tables. Float-formatted cells
// (e.g. "12.0", which Sheets produces for numeric columns) are truncated.
func ToInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// ToBool parses a spreadsheet cell into a boolean.
// The accepted true tokens are {true, 1, yes, y, t}, case-insensitive;
// any other value, including blank, is false.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "t":
		return true
	default:
		return false
	}
}

// FormatBool serializes a boolean for a spreadsheet cell.
// TRUE is one of the tokens ToBool accepts; FALSE is not, which round-trips
// correctly since anything outside the token set reads back as false.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
