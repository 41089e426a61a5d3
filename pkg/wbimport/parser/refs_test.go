package parser

import "testing"

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref string
		col string
		row int
	}{
		{"A1", "A", 1},
		{"E42", "E", 42},
		{"AB130", "AB", 130},
		{"E", "", 0},
		{"42", "", 0},
		{"", "", 0},
		{"E4x", "", 0},
	}

	for _, tt := range tests {
		col, row := SplitRef(tt.ref)
		if col != tt.col || row != tt.row {
			t.Errorf("SplitRef(%q) = (%q, %d), expected (%q, %d)",
				tt.ref, col, row, tt.col, tt.row)
		}
	}
}

func TestColumnNumber(t *testing.T) {
	tests := []struct {
		col string
		num int
	}{
		{"A", 1},
		{"E", 5},
		{"Z", 26},
		{"AA", 27},
		{"AN", 40},
	}

	for _, tt := range tests {
		if got := ColumnNumber(tt.col); got != tt.num {
			t.Errorf("ColumnNumber(%q) = %d, expected %d", tt.col, got, tt.num)
		}
	}
}
