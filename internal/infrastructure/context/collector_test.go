package contextcollector

import (
	"context"
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"llm2sh/internal/domain"
)

func fakeEnviron(n int) func() []string {
	return func() []string {
		env := make([]string, 0, n)
		for i := 0; i < n; i++ {
			env = append(env, fmt.Sprintf("VAR_%03d=value-%d", i, i))
		}
		return env
	}
}

func TestEnvNamesCappedAtDocumentedMaximum(t *testing.T) {
	c := NewCollector()
	c.environ = fakeEnviron(domain.MaxContextEntries + 50)

	snapshot, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if got := len(snapshot.EnvNames); got != domain.MaxContextEntries {
		t.Fatalf("env name count = %d, want exactly %d", got, domain.MaxContextEntries)
	}
	if !sort.StringsAreSorted(snapshot.EnvNames) {
		t.Fatal("env names are not in lexical order")
	}
}

func TestEnvNamesBelowCapKeptWhole(t *testing.T) {
	c := NewCollector()
	c.environ = fakeEnviron(7)

	snapshot, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got := len(snapshot.EnvNames); got != 7 {
		t.Fatalf("env name count = %d, want 7 (no truncation below the cap)", got)
	}
}

func TestEnvNamesNeverIncludeValues(t *testing.T) {
	c := NewCollector()
	c.environ = func() []string {
		return []string{"API_TOKEN=s3cret", "HOME=/home/bob"}
	}

	snapshot, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"API_TOKEN", "HOME"}
	if diff := cmp.Diff(want, snapshot.EnvNames); diff != "" {
		t.Fatalf("env names mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvNamesFilterJunk(t *testing.T) {
	c := NewCollector()
	c.environ = func() []string {
		return []string{
			"PATH=/usr/bin",
			"LS_COLORS=whatever",
			"VSCODE_PID=123",
			"XDG_RUNTIME_DIR=/run/user/1000",
			"EDITOR=vim",
		}
	}

	snapshot, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"EDITOR", "PATH"}
	if diff := cmp.Diff(want, snapshot.EnvNames); diff != "" {
		t.Fatalf("env names mismatch (-want +got):\n%s", diff)
	}
}

func TestDirEntriesSortedAndCapped(t *testing.T) {
	tmp := t.TempDir()
	for i := 0; i < domain.MaxContextEntries+10; i++ {
		if err := os.WriteFile(
			fmt.Sprintf("%s/file-%04d.txt", tmp, i), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := NewCollector()
	c.getwd = func() (string, error) { return tmp, nil }
	c.environ = func() []string { return nil }

	snapshot, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got := len(snapshot.DirEntries); got != domain.MaxContextEntries {
		t.Fatalf("dir entry count = %d, want %d", got, domain.MaxContextEntries)
	}
	if !sort.StringsAreSorted(snapshot.DirEntries) {
		t.Fatal("dir entries are not in lexical order")
	}
	if snapshot.WorkingDir != tmp {
		t.Fatalf("working dir = %q, want %q", snapshot.WorkingDir, tmp)
	}
}
