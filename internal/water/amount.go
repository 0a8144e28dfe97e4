package water

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var amountRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)(ml|l|glass|glasses|copo|copos)?$`)

// ParseAmount parses a human-friendly water amount into ml.
// Supported formats: "250", "250ml", "0.5l", "1,5 L", "2 glasses", "1 copo".
// Returns an error for empty, zero or negative amounts and for amounts above
// MaxIntakeML.
func ParseAmount(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected e.g. 250ml, 0.5l, 2 glasses)", ErrInvalidAmount, s)
	}

	value, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var ml float64
	switch m[2] {
	case "", "ml":
		ml = value
	case "l":
		ml = value * 1000
	default:
		ml = value * GlassML
	}

	if ml > MaxIntakeML {
		return 0, fmt.Errorf("%w: %q is more than the %s daily limit", ErrInvalidAmount, s, FormatML(MaxIntakeML))
	}
	total := int(math.Round(ml))
	if total <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return total, nil
}

// FormatML converts an ml count to a human-friendly string.
// Examples: 750 → "750 ml", 1500 → "1.5 L", 2000 → "2 L".
func FormatML(ml int) string {
	if ml < 1000 {
		if ml < 0 {
			ml = 0
		}
		return fmt.Sprintf("%d ml", ml)
	}
	liters := strconv.FormatFloat(float64(ml)/1000, 'f', 2, 64)
	liters = strings.TrimRight(strings.TrimRight(liters, "0"), ".")
	return liters + " L"
}
