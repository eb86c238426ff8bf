package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Flags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "prefs", "refresh", "log-file", "verbose"} {
		if root.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s not registered", name)
		}
	}
	if f := root.Flags().ShorthandLookup("v"); f == nil || f.Name != "verbose" {
		t.Fatalf("-v should map to --verbose")
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"extra"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("Execute error = %v, want unknown command", err)
	}
}
