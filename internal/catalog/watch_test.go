package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type reload struct {
	cat *Catalog
	err error
}

func startWatch(t *testing.T, path string) (*Watcher, chan reload) {
	t.Helper()
	reloads := make(chan reload, 16)
	w, err := Watch(path, 20*time.Millisecond, func(c *Catalog, err error) {
		reloads <- reload{c, err}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	t.Cleanup(w.Stop)
	return w, reloads
}

func waitReload(t *testing.T, reloads chan reload) reload {
	t.Helper()
	select {
	case r := <-reloads:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return reload{}
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, doc(entry("a", "10")), 0644); err != nil {
		t.Fatal(err)
	}
	_, reloads := startWatch(t, path)

	if err := os.WriteFile(path, doc(entry("a", "10"), entry("b", "20")), 0644); err != nil {
		t.Fatal(err)
	}
	r := waitReload(t, reloads)
	if r.err != nil {
		t.Fatalf("reload error = %v", r.err)
	}
	if r.cat.Len() != 2 {
		t.Errorf("Len() = %d after reload, want 2", r.cat.Len())
	}
}

func TestWatch_ReportsInvalidContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, doc(entry("a", "10")), 0644); err != nil {
		t.Fatal(err)
	}
	_, reloads := startWatch(t, path)

	if err := os.WriteFile(path, []byte("entries: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := waitReload(t, reloads)
	if r.err == nil {
		t.Error("expected an error for a malformed catalog")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, doc(entry("a", "10")), 0644); err != nil {
		t.Fatal(err)
	}
	w, reloads := startWatch(t, path)
	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-reloads:
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_StopTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, doc(entry("a", "10")), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path, 0, func(*Catalog, error) {})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.Stop()
	w.Stop()
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "catalog.yaml"), 0, func(*Catalog, error) {})
	if err == nil {
		t.Error("expected error when the directory does not exist")
	}
}
