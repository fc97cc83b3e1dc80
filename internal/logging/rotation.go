package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// RotationConfig holds configuration for log rotation.
type RotationConfig struct {
	// MaxSizeMB is the size in megabytes at which the file is rotated.
	// Zero disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept next to the live one.
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultRotationConfig returns the rotation settings used when the
// configuration leaves them unset.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  5,
		MaxBackups: 3,
	}
}

// RotatingWriter is an io.WriteCloser that rotates its file once it grows
// past a size threshold. Backups are named {path}.1, {path}.2, ... with .1
// the newest; compressed backups carry an extra .gz suffix.
type RotatingWriter struct {
	mu sync.Mutex

	fs         afero.Fs
	path       string
	limit      int64
	maxBackups int
	compress   bool

	file afero.File
	size int64
}

// NewRotatingWriter opens path on the OS filesystem for appending.
func NewRotatingWriter(path string, cfg RotationConfig) (*RotatingWriter, error) {
	return NewRotatingWriterFs(afero.NewOsFs(), path, cfg)
}

// NewRotatingWriterFs opens path on fs for appending, creating parent
// directories as needed.
func NewRotatingWriterFs(fs afero.Fs, path string, cfg RotationConfig) (*RotatingWriter, error) {
	rw := &RotatingWriter{
		fs:         fs,
		path:       path,
		limit:      int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := rw.open(); err != nil {
		return nil, err
	}
	return rw, nil
}

func (rw *RotatingWriter) open() error {
	f, err := rw.fs.OpenFile(rw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rw.file = f
	rw.size = info.Size()
	return nil
}

// Write appends p, rotating first if p would push the file past the limit.
// A single write larger than the limit still lands in one file.
func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return 0, os.ErrClosed
	}
	if rw.limit > 0 && rw.size > 0 && rw.size+int64(len(p)) > rw.limit {
		if err := rw.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

func (rw *RotatingWriter) rotate() error {
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	rw.file = nil

	if rw.maxBackups <= 0 {
		if err := rw.fs.Remove(rw.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove log file: %w", err)
		}
		return rw.open()
	}

	rw.shiftBackups()
	first := rw.backupName(1, false)
	if err := rw.fs.Rename(rw.path, first); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if rw.compress {
		if err := rw.gzip(first); err != nil {
			return err
		}
	}
	return rw.open()
}

// shiftBackups moves backup n to n+1, dropping whatever falls past
// maxBackups.
func (rw *RotatingWriter) shiftBackups() {
	for _, gz := range []bool{false, true} {
		_ = rw.fs.Remove(rw.backupName(rw.maxBackups, gz))
	}
	for n := rw.maxBackups - 1; n >= 1; n-- {
		for _, gz := range []bool{false, true} {
			from := rw.backupName(n, gz)
			if ok, _ := afero.Exists(rw.fs, from); ok {
				_ = rw.fs.Rename(from, rw.backupName(n+1, gz))
			}
		}
	}
}

func (rw *RotatingWriter) backupName(n int, gz bool) string {
	name := fmt.Sprintf("%s.%d", rw.path, n)
	if gz {
		name += ".gz"
	}
	return name
}

func (rw *RotatingWriter) gzip(path string) error {
	src, err := rw.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := rw.fs.Create(path + ".gz")
	if err != nil {
		return fmt.Errorf("create compressed backup: %w", err)
	}
	zw := gzip.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("compress backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("compress backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close compressed backup: %w", err)
	}
	return rw.fs.Remove(path)
}

// Sync flushes the live file to stable storage.
func (rw *RotatingWriter) Sync() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.file == nil {
		return nil
	}
	return rw.file.Sync()
}

// Close closes the live file. Further writes fail with os.ErrClosed.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.file == nil {
		return nil
	}
	err := rw.file.Close()
	rw.file = nil
	return err
}

// Size returns the byte size of the live file.
func (rw *RotatingWriter) Size() int64 {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.size
}

// Path returns the live file path.
func (rw *RotatingWriter) Path() string {
	return rw.path
}
