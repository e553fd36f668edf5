package main

import (
	"strings"
	"testing"
)

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "agenda" {
		t.Fatalf("expected root command name agenda, got %q", rootCmd.Use)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.HasPrefix(versionString(), "agenda ") {
		t.Fatalf("versionString() = %q, expected agenda prefix", versionString())
	}
}
