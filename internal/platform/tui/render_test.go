package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

func TestRenderScreenLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "HP", core.ColorBrightRed)
	s.DrawText(3, 0, "ok")
	s.SetCell(4, 1, '@', core.ColorLavender)
	s.SetCell(5, 2, '+', core.ColorBlood)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	want := []string{"HP ok     ", "    @     ", "     +    "}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBlood; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}
