// Package assets resolves the image references carried by catalog entries.
//
// A terminal cannot draw the photographs themselves, so the showcase renders
// a framed block describing the image. When the file is missing or is not a
// decodable image the block is hidden entirely; resolution never fails
// loudly.
package assets

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/logging"
)

// Image describes a resolved image reference.
type Image struct {
	Ref     string
	Path    string
	Visible bool
	Width   int
	Height  int
	Format  string
}

// Hidden reports whether the consumer should omit the image element.
func (i Image) Hidden() bool {
	return !i.Visible
}

// Resolver looks up image references below a root directory.
// It is safe for concurrent use; results are cached per reference.
type Resolver struct {
	fs     afero.Fs
	root   string
	logger *logging.Logger

	mu    sync.Mutex
	cache map[string]Image
}

// NewResolver creates a Resolver reading from fs below root.
// A nil logger discards diagnostics.
func NewResolver(fs afero.Fs, root string, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Resolver{
		fs:     fs,
		root:   root,
		logger: logger.WithComponent("assets"),
		cache:  make(map[string]Image),
	}
}

// NewOSResolver creates a Resolver over the real filesystem.
func NewOSResolver(root string, logger *logging.Logger) *Resolver {
	return NewResolver(afero.NewOsFs(), root, logger)
}

// Resolve returns the image for ref. Any failure yields a hidden image.
func (r *Resolver) Resolve(ref string) Image {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.cache[ref]; ok {
		return img
	}

	img, err := r.resolve(ref)
	if err != nil {
		r.logger.Debug("image hidden", "ref", ref, "error", err.Error())
	}
	r.cache[ref] = img
	return img
}

func (r *Resolver) resolve(ref string) (Image, error) {
	img := Image{Ref: ref}
	if ref == "" {
		return img, errors.NewAssetError(ref, errors.ErrAssetMissing)
	}

	// Refs are slash-separated and may not climb out of root.
	clean := path.Clean("/" + ref)
	p := filepath.Join(r.root, filepath.FromSlash(clean))
	img.Path = p

	f, err := r.fs.Open(p)
	if err != nil {
		return img, errors.NewAssetError(ref, errors.ErrAssetMissing).WithPath(p)
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return img, errors.NewAssetError(ref, errors.Join(errors.ErrAssetUndecodable, err)).WithPath(p)
	}

	img.Visible = true
	img.Width = cfg.Width
	img.Height = cfg.Height
	img.Format = format
	return img, nil
}
