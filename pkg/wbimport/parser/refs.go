package parser

import "strconv"

// SplitRef splits an A1-style ref into its column letters and row number.
// A ref that does not start with column letters followed by digits yields
// ("", 0).
func SplitRef(ref string) (string, int) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(ref) {
		return "", 0
	}

	row, err := strconv.Atoi(ref[i:])
	if err != nil {
		return "", 0
	}
	return ref[:i], row
}

// ColumnNumber converts column letters to a 1-based column number
// ("A" → 1, "Z" → 26, "AA" → 27).
func ColumnNumber(col string) int {
	num := 0
	for i := 0; i < len(col); i++ {
		if col[i] < 'A' || col[i] > 'Z' {
			continue
		}
		num = num*26 + int(col[i]-'A') + 1
	}
	return num
}
