package io

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/nfsf/pkg/errors"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	if err := WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<svg/>" {
		t.Errorf("content = %q, want %q", got, "<svg/>")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("perm = %o, want 644", perm)
	}
	assertOnlyFiles(t, dir, "out.svg")
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileFunc_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	boom := stderrors.New("boom")
	err := WriteFileFunc(path, 0o644, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeIO)
	}
	if !stderrors.Is(err, boom) {
		t.Errorf("cause not preserved: %v", err)
	}
	assertOnlyFiles(t, dir)
}

func TestWriteFileFunc_FailureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	_ = WriteFileFunc(path, 0o644, func(io.Writer) error { return stderrors.New("boom") })

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("content = %q, want existing file untouched", got)
	}
	assertOnlyFiles(t, dir, "out.svg")
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	err := WriteFile(path, []byte("x"), 0o644)
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeIO)
	}
}

func TestWriteFile_InvalidPath(t *testing.T) {
	err := WriteFile("  ", []byte("x"), 0o644)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func assertOnlyFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("files = %v, want %v", got, want)
		}
	}
}
