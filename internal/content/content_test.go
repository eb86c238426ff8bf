package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, path string, n int) []string {
	t.Helper()
	var b strings.Builder
	var lines []string
	for i := 1; i <= n; i++ {
		line := fmt.Sprintf("Line %d", i)
		b.WriteString(line + "\n")
		lines = append(lines, line)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return lines
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	all := writeLines(t, path, 10)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (5)", 5, all[5:]},
		{"read exactly all (10)", 10, all},
		{"read more than exists (20)", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Tail() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Tail(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store
	before := time.Now()
	s.Update("left", []string{"a", "b"}, nil)

	snap := s.Snapshot()
	if got := snap.Lines("left"); len(got) != 2 || got[0] != "a" {
		t.Fatalf("Lines(left) = %v, want [a b]", got)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	snap.Panes["left"].Lines[0] = "mutated"
	if got := s.Snapshot().Lines("left")[0]; got != "a" {
		t.Fatalf("Snapshot should clone lines; got %q want a", got)
	}
	if got := snap.Lines("unknown"); got != nil {
		t.Fatalf("Lines(unknown) = %v, want nil", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousLines(t *testing.T) {
	var s Store
	s.Update("left", []string{"a"}, nil)

	origErr := errors.New("boom")
	s.Update("left", nil, origErr)
	s.Update("left", nil, origErr)

	snap := s.Snapshot()
	p := snap.Panes["left"]
	if len(p.Lines) != 1 || p.Lines[0] != "a" {
		t.Fatalf("lines changed on error: %v", p.Lines)
	}
	if p.Failures != 2 {
		t.Fatalf("Failures = %d, want 2", p.Failures)
	}
	if !errors.Is(snap.Err("left"), origErr) {
		t.Fatalf("Err = %v, want wrapping boom", snap.Err("left"))
	}
	if snap.Err("left") == origErr {
		t.Fatalf("Snapshot should clone error instance")
	}

	s.Update("left", []string{"b"}, nil)
	p = s.Snapshot().Panes["left"]
	if p.Failures != 0 || p.Err != nil {
		t.Fatalf("success should reset failures; got %d %v", p.Failures, p.Err)
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 2 * time.Second
	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 10, 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateBackoff(tt.failures, base); got != tt.want {
				t.Fatalf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	for failures := 0; failures <= 64; failures++ {
		if got := calculateBackoff(failures, 2*time.Second); got > maxBackoff {
			t.Fatalf("calculateBackoff(%d) = %v, exceeds %v", failures, got, maxBackoff)
		}
	}
}

func TestWatcher_RefreshCountsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.log")
	writeLines(t, good, 3)

	var s Store
	w := NewWatcher(&s, map[string]string{
		"good":    good,
		"missing": filepath.Join(dir, "missing.log"),
		"dir":     dir,
	}, WatcherOptions{MaxLines: 2})

	require.Equal(t, 1, w.Refresh())
	snap := s.Snapshot()
	require.Equal(t, []string{"Line 2", "Line 3"}, snap.Lines("good"))
	require.Nil(t, snap.Lines("missing"))
	require.NoError(t, snap.Err("missing"))
	require.Error(t, snap.Err("dir"))
}

func TestWatcher_RunPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pane.log")
	writeLines(t, path, 1)

	var s Store
	w := NewWatcher(&s, map[string]string{"left": path}, WatcherOptions{Interval: 20 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(s.Snapshot().Lines("left")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	writeLines(t, path, 4)
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Lines("left")) == 4
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_RunWithoutFilesReturns(t *testing.T) {
	var s Store
	w := NewWatcher(&s, nil, WatcherOptions{})
	require.NoError(t, w.Run(context.Background()))
}
