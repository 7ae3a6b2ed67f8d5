package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcher_NoFiles(t *testing.T) {
	if _, err := NewWatcher(); !errors.Is(err, ErrNoFiles) {
		t.Errorf("err = %v, want ErrNoFiles", err)
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	proteins := filepath.Join(dir, "proteins.txt")
	edges := filepath.Join(dir, "interactions.txt")
	for _, f := range []string{proteins, edges} {
		if err := os.WriteFile(f, []byte("P1\n"), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", f, err)
		}
	}

	w, err := NewWatcher(proteins, edges)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(proteins, []byte("P1\nP2\n"), 0o644); err != nil {
		t.Fatalf("updating file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Path != proteins {
			t.Errorf("change path = %q, want %q", change.Path, proteins)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	proteins := filepath.Join(dir, "proteins.txt")
	if err := os.WriteFile(proteins, []byte("P1\n"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	w, err := NewWatcher(proteins)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("writing unrelated file: %v", err)
	}

	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change event: %+v", change)
	case <-time.After(500 * time.Millisecond):
		// Expected: no events for unrelated files.
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	proteins := filepath.Join(dir, "proteins.txt")
	if err := os.WriteFile(proteins, []byte("P1\n"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	w, err := NewWatcher(proteins)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(proteins, []byte("P1\nP2\n"), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	select {
	case <-w.Changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	select {
	case change := <-w.Changes:
		t.Errorf("burst produced a second change event: %+v", change)
	case <-time.After(500 * time.Millisecond):
		// Expected: the burst settles into one event.
	}
}

func TestWatcher_StopWithPendingChanges(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 24; i++ {
		f := filepath.Join(dir, fmt.Sprintf("part%02d.txt", i))
		if err := os.WriteFile(f, []byte("P1\n"), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", f, err)
		}
		files = append(files, f)
	}

	w, err := NewWatcher(files...)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for _, f := range files {
		if err := os.WriteFile(f, []byte("P1\nP2\n"), 0o644); err != nil {
			t.Fatalf("updating %s: %v", f, err)
		}
	}

	// Stop without draining Changes. Even with more pending changes
	// than the channel buffers, Stop must return.
	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked with undelivered pending changes")
	}
}

func TestWatcher_DetectsRemoval(t *testing.T) {
	dir := t.TempDir()
	proteins := filepath.Join(dir, "proteins.txt")
	if err := os.WriteFile(proteins, []byte("P1\n"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	w, err := NewWatcher(proteins)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.Remove(proteins); err != nil {
		t.Fatalf("removing file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Path != proteins {
			t.Errorf("change path = %q, want %q", change.Path, proteins)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for removal event")
	}
}

func TestWatcher_FilesAcrossDirectories(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	proteins := filepath.Join(dirA, "proteins.txt")
	edges := filepath.Join(dirB, "interactions.txt")
	for _, f := range []string{proteins, edges} {
		if err := os.WriteFile(f, []byte("x\n"), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", f, err)
		}
	}

	w, err := NewWatcher(proteins, edges)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(edges, []byte("P1 P2\n"), 0o644); err != nil {
		t.Fatalf("updating edges: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Path != edges {
			t.Errorf("change path = %q, want %q", change.Path, edges)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
