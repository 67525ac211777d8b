package resume

import (
	"strings"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"修复", 4},
		{"こんにちは", 10},
		{"한국어", 6},
		{"ＡＢ", 4},
		{"a\tb\n", 2},
		{"\x1b", 0},
		{"\u0085", 0},
		{"mixed 中文", 10},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.s); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestDisplayWidth_CJKIsDoubleCount(t *testing.T) {
	for k := 1; k <= 12; k++ {
		s := strings.Repeat("字", k)
		if got := DisplayWidth(s); got != 2*k {
			t.Fatalf("DisplayWidth(%d CJK) = %d, want %d", k, got, 2*k)
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("1", 3); got != "1  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("12", 5); got != "   12" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("中", 3); got != "中 " {
		t.Errorf("PadRight CJK = %q", got)
	}
	if got := PadLeft("中文字", 5); got != "中文字" {
		t.Errorf("PadLeft over width = %q", got)
	}
}
