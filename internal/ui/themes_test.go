package ui

import "testing"

func TestInitTheme(t *testing.T) {
	saved := GetCurrentTUITheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	t.Run("flag disables colours", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTUITheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})

	t.Run("NO_COLOR disables colours", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTUITheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})
}

func TestSetCurrentTheme(t *testing.T) {
	saved := GetCurrentTUITheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	SetCurrentTheme(DarkTheme)
	if got := GetCurrentTUITheme().Name; got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
}
