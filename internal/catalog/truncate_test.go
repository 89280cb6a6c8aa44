package catalog

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	layout := DefaultLayout()

	// The reference layout gives the description column 88 columns on a
	// 200-column terminal and never less than 10.
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "short text untouched",
			text:  "severity: warning",
			width: 200,
			want:  "severity: warning",
		},
		{
			name:  "newlines escaped",
			text:  "first\nsecond",
			width: 200,
			want:  `first\nsecond`,
		},
		{
			name:  "cut at budget",
			text:  "abcdefghijklmno",
			width: 122,
			want:  "abcdefghij...",
		},
		{
			name:  "zero width falls to the floor",
			text:  "abcdefghijk",
			width: 0,
			want:  "abcdefghij...",
		},
		{
			name:  "exactly at the floor",
			text:  "abcdefghij",
			width: 0,
			want:  "abcdefghij",
		},
		{
			name:  "negative width does not underflow",
			text:  "abcdefghijklmno",
			width: -80,
			want:  "abcdefghij...",
		},
		{
			name:  "escape counts against the budget",
			text:  "ab\ncdefghij",
			width: 122,
			want:  `ab\ncdefgh...`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.Truncate(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsBudget(t *testing.T) {
	layout := DefaultLayout()
	long := strings.Repeat("x", 500)

	for _, width := range []int{0, 50, 112, 113, 150, 200, 1000} {
		got := layout.Truncate(long, width)

		budget := width - layout.DescriptionOffset
		if budget < layout.MinDescriptionWidth {
			budget = layout.MinDescriptionWidth
		}

		if len(got) > budget+len(ellipsis) {
			t.Errorf("width %d: result length %d exceeds budget %d + ellipsis", width, len(got), budget)
		}
	}
}
