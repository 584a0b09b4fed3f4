// Package rastertest builds small binary buffers from text art for tests.
// '#' is black, every other byte is white.
package rastertest

import (
	"strings"
	"testing"

	"curve-points/internal/raster"
)

// FromRows builds a 3-channel binary buffer; all rows must be equally long.
func FromRows(tb testing.TB, rows ...string) *raster.Buffer {
	tb.Helper()

	if len(rows) == 0 {
		tb.Fatal("rastertest: no rows")
	}
	buf, err := raster.NewBinary(len(rows), len(rows[0]))
	if err != nil {
		tb.Fatalf("rastertest: %v", err)
	}
	for r, line := range rows {
		if len(line) != buf.Cols() {
			tb.Fatalf("rastertest: row %d has %d cols, want %d", r, len(line), buf.Cols())
		}
		for c := 0; c < len(line); c++ {
			if line[c] == '#' {
				buf.SetBlack(r, c)
			}
		}
	}
	return buf
}

// Rows renders b back into text art using the default classifier.
func Rows(b *raster.Buffer) []string {
	var classifier raster.Classifier
	rows := make([]string, b.Rows())
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < b.Cols(); c++ {
			if classifier.IsBlack(b, r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// Equal reports whether b matches the text art exactly.
func Equal(b *raster.Buffer, rows ...string) bool {
	got := Rows(b)
	if len(got) != len(rows) {
		return false
	}
	for i := range got {
		if got[i] != rows[i] {
			return false
		}
	}
	return true
}
