package styles

import (
	"testing"
)

func TestGlobalsInitialized(t *testing.T) {
	if AccentColor == "" || GoldColor == "" || BorderColor == "" {
		t.Fatal("package colors not initialized from the default theme")
	}
	if AccentColor != ArchivePalette().Accent {
		t.Errorf("AccentColor = %v, want archive accent", AccentColor)
	}
}

func TestFade(t *testing.T) {
	base := Text
	if Fade(base, 1).GetFaint() {
		t.Error("fully opaque style should not be faint")
	}
	if !Fade(base, 0.3).GetFaint() {
		t.Error("low opacity should render faint")
	}
	if base.GetFaint() {
		t.Error("Fade mutated its input")
	}
}
