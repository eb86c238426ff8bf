package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRun_InvalidConfigFailsBeforeUI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(`direction = "sideways"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil {
		t.Fatalf("Run returned nil error, want config error")
	}
	if !strings.Contains(err.Error(), "load layout config") {
		t.Fatalf("Run error = %q, want load layout config", err.Error())
	}
}

func TestOpenLogFile_CreatesDirsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "panesplit.log")

	for _, msg := range []string{"first", "second"} {
		w, closeLog, err := openLogFile(path)
		if err != nil {
			t.Fatalf("openLogFile returned error: %v", err)
		}
		newLogger(w, log.InfoLevel).Info(msg, "splitter", "abcd1234")
		if err := closeLog(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("log = %q, want both records", out)
	}
	if !strings.Contains(out, "splitter=abcd1234") {
		t.Fatalf("log = %q, want key/value fields", out)
	}
}

func TestOpenLogFile_EmptyPathDiscards(t *testing.T) {
	w, closeLog, err := openLogFile("")
	if err != nil {
		t.Fatalf("openLogFile returned error: %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewLogger_DebugFiltered(t *testing.T) {
	var b strings.Builder
	logger := newLogger(&b, log.InfoLevel)
	logger.Debug("hidden")
	logger.Warn("shown")
	if strings.Contains(b.String(), "hidden") || !strings.Contains(b.String(), "shown") {
		t.Fatalf("log = %q, want only warn", b.String())
	}
}
