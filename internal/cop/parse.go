package cop

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseTemperature reads the longest numeric prefix of raw, ignoring leading
// whitespace. Input without a numeric prefix yields NaN rather than an error.
func ParseTemperature(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// overflow still carries the signed infinity
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
