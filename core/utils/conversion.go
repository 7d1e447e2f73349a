package utils

import (
	"encoding/json"
	"strconv"
)

// ToInt converts a decoded JSON value to int using explicit type switching.
// Only integer literals count: "3", 3.0, 1e0, true and null are all rejected.
// Bodies must be decoded with UseNumber so literals arrive as json.Number.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case json.Number:
		// Atoi refuses fractions and exponents
		i, err := strconv.Atoi(v.String())
		return i, err == nil
	default:
		return 0, false
	}
}

// ParseDigits parses a canonical unsigned decimal: ASCII digits only, no sign
// and no leading zero. "3" is accepted; "+3", "03", "-1" and " 3" are not.
func ParseDigits(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
