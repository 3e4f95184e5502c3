package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errEmptyAmount = errors.New("empty amount")

// parseCents converts a decimal money string ("20.00", "10.5", "-3") into
// integer cents. Amounts arrive as text on the webhook wire; parsing them
// into cents keeps revenue sums exact at two-decimal precision. A third
// fractional digit rounds half up.
func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyAmount
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}

	// 50 bits keeps whole*100+frac comfortably inside int64
	whole, err := strconv.ParseUint(intPart, 10, 50)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}

	var frac uint64
	if fracPart != "" {
		digits := fracPart
		roundUp := false
		if len(digits) > 2 {
			if digits[2] >= '5' {
				roundUp = true
			}
			// Validate the discarded tail before dropping it
			if _, err := strconv.ParseUint(digits[2:], 10, 64); err != nil {
				return 0, fmt.Errorf("malformed amount %q: %w", s, err)
			}
			digits = digits[:2]
		}
		frac, err = strconv.ParseUint(digits, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", s, err)
		}
		if len(digits) == 1 {
			frac *= 10
		}
		if roundUp {
			frac++
		}
	}

	cents := int64(whole*100 + frac)
	if neg {
		cents = -cents
	}
	return cents, nil
}

// orderDateLayouts are the timestamp shapes commerce platforms put in
// created_at fields. Date-only values are treated as midnight UTC.
var orderDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseOrderDate(s string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed date %q", s)
}
