package tui

import "testing"

func TestResolveThemeFallback(t *testing.T) {
	if got := ResolveTheme("dracula").Name; got != "Dracula" {
		t.Fatalf("expected Dracula, got %q", got)
	}
	if got := ResolveTheme("nope").Name; got != "Default" {
		t.Fatalf("unknown theme should fall back to Default, got %q", got)
	}
}

func TestNextThemeNameCycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "default" || names[1] != "dracula" || names[2] != "mono" {
		t.Fatalf("unexpected theme names %v", names)
	}
	seen := map[string]bool{}
	name := "default"
	for range names {
		seen[name] = true
		name = nextThemeName(name)
	}
	if name != "default" || len(seen) != len(names) {
		t.Fatalf("cycle did not visit every theme: %v", seen)
	}
	if nextThemeName("missing") != names[0] {
		t.Fatalf("unknown current theme should restart the cycle")
	}
}
