package wbimport

import (
	"math"
	"strconv"
	"strings"
)

type normKind int

const (
	normEmpty normKind = iota
	normInt
	normFloat
	normText
)

// normValue is the canonical form a cell value takes for override
// comparison. Values are comparable with ==.
type normValue struct {
	kind normKind
	num  float64
	text string
}

// String renders the canonical form back to text. Normalizing the result
// yields the same value again.
func (v normValue) String() string {
	switch v.kind {
	case normInt:
		return strconv.FormatInt(int64(v.num), 10)
	case normFloat:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case normText:
		return v.text
	}
	return ""
}

// normalize maps a raw cell value to its comparison form. Nil, empty and
// whitespace-only text (including a lone non-breaking space) all become the
// same absent token. Numeric-looking text is snapped: integral values
// compare as integers, others are rounded to 6 decimal places. Anything
// else compares as trimmed text. Applied identically to both sides of a
// comparison.
func normalize(value *string) normValue {
	if value == nil {
		return normValue{kind: normEmpty}
	}

	// TrimSpace covers U+00A0, so a lone non-breaking space lands here too.
	text := strings.TrimSpace(*value)
	if text == "" {
		return normValue{kind: normEmpty}
	}

	if number, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(number, 0) {
		// Rounding can land a non-integral value on an integer; such values
		// snap to the integer form so 1.0000001 and "1" compare equal.
		rounded := math.Round(number*1e6) / 1e6
		if rounded == math.Trunc(rounded) {
			return normValue{kind: normInt, num: rounded}
		}
		return normValue{kind: normFloat, num: rounded}
	}

	return normValue{kind: normText, text: text}
}

// equalValues reports whether two raw values compare equal after
// normalization.
func equalValues(a, b *string) bool {
	return normalize(a) == normalize(b)
}
