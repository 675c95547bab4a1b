package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Case File", "2/6 revealed", 100)
	for _, want := range []string{"CaseSim", "Case File", "2/6 revealed"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "Diagnose"}}, 80)
	if !strings.Contains(f, "Tab") || !strings.Contains(f, "Diagnose") {
		t.Errorf("footer = %q", f)
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, strings.Repeat("line\n", 100), footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}

func TestContentHeight_NeverNegative(t *testing.T) {
	if got := ContentHeight("a\nb\nc", "d\ne\nf", 4); got != 0 {
		t.Errorf("ContentHeight = %d, want 0", got)
	}
}
