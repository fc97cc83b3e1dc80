package logging

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const mb = 1024 * 1024

func newMemWriter(t *testing.T, cfg RotationConfig) (afero.Fs, *RotatingWriter) {
	t.Helper()
	fs := afero.NewMemMapFs()
	rw, err := NewRotatingWriterFs(fs, "/state/logs/debug.log", cfg)
	if err != nil {
		t.Fatalf("NewRotatingWriterFs() error = %v", err)
	}
	return fs, rw
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func TestRotatingWriter_AppendsToExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/l/debug.log", []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rw, err := NewRotatingWriterFs(fs, "/l/debug.log", RotationConfig{MaxSizeMB: 1})
	if err != nil {
		t.Fatal(err)
	}
	if rw.Size() != 4 {
		t.Errorf("Size() = %d, want 4", rw.Size())
	}
	if _, err := rw.Write([]byte("new\n")); err != nil {
		t.Fatal(err)
	}
	_ = rw.Close()

	data, _ := afero.ReadFile(fs, "/l/debug.log")
	if string(data) != "old\nnew\n" {
		t.Errorf("contents = %q", data)
	}
}

func TestRotatingWriter_Rotates(t *testing.T) {
	fs, rw := newMemWriter(t, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	chunk := bytes.Repeat([]byte("x"), mb/2+1)

	for i := 0; i < 4; i++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	_ = rw.Close()

	for _, p := range []string{"/state/logs/debug.log", "/state/logs/debug.log.1", "/state/logs/debug.log.2"} {
		if !exists(t, fs, p) {
			t.Errorf("%s missing", p)
		}
	}
	if exists(t, fs, "/state/logs/debug.log.3") {
		t.Error("backup beyond MaxBackups was kept")
	}
}

func TestRotatingWriter_NoBackups(t *testing.T) {
	fs, rw := newMemWriter(t, RotationConfig{MaxSizeMB: 1})
	chunk := bytes.Repeat([]byte("y"), mb-10)

	_, _ = rw.Write(chunk)
	_, _ = rw.Write(chunk)
	_ = rw.Close()

	if exists(t, fs, "/state/logs/debug.log.1") {
		t.Error("backup written with MaxBackups = 0")
	}
	if rw.Size() != int64(len(chunk)) {
		t.Errorf("Size() = %d, want %d", rw.Size(), len(chunk))
	}
}

func TestRotatingWriter_Disabled(t *testing.T) {
	fs, rw := newMemWriter(t, RotationConfig{MaxSizeMB: 0, MaxBackups: 3})
	chunk := bytes.Repeat([]byte("z"), mb)
	_, _ = rw.Write(chunk)
	_, _ = rw.Write(chunk)
	_ = rw.Close()

	if exists(t, fs, "/state/logs/debug.log.1") {
		t.Error("rotated despite MaxSizeMB = 0")
	}
}

func TestRotatingWriter_Compress(t *testing.T) {
	fs, rw := newMemWriter(t, RotationConfig{MaxSizeMB: 1, MaxBackups: 1, Compress: true})
	first := bytes.Repeat([]byte("a"), mb-1)
	_, _ = rw.Write(first)
	_, _ = rw.Write([]byte("bb"))
	_ = rw.Close()

	if exists(t, fs, "/state/logs/debug.log.1") {
		t.Error("uncompressed backup left behind")
	}
	f, err := fs.Open("/state/logs/debug.log.1.gz")
	if err != nil {
		t.Fatalf("compressed backup missing: %v", err)
	}
	defer func() { _ = f.Close() }()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, first) {
		t.Errorf("decompressed %d bytes, want %d", len(data), len(first))
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	_, rw := newMemWriter(t, DefaultRotationConfig())
	if err := rw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := rw.Write([]byte("late")); err != os.ErrClosed {
		t.Errorf("Write() after Close error = %v, want os.ErrClosed", err)
	}
	if err := rw.Sync(); err != nil {
		t.Errorf("Sync() after Close error = %v", err)
	}
}

func TestRotatingWriter_Path(t *testing.T) {
	_, rw := newMemWriter(t, DefaultRotationConfig())
	defer func() { _ = rw.Close() }()
	if !strings.HasSuffix(rw.Path(), "debug.log") {
		t.Errorf("Path() = %q", rw.Path())
	}
}

func TestDefaultRotationConfig(t *testing.T) {
	cfg := DefaultRotationConfig()
	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 {
		t.Errorf("DefaultRotationConfig() = %+v", cfg)
	}
}
