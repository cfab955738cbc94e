package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPathExpandsHomeDirectory(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	got := ExpandPath("~/ConvertedGremlins")
	want := filepath.Join(home, "ConvertedGremlins")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPathLeavesAbsolutePathUnchanged(t *testing.T) {
	path := "/tmp/gremlins"
	if got := ExpandPath(path); got != path {
		t.Fatalf("ExpandPath(%q) = %q, want same", path, got)
	}
}
