package catalogs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/petvalues/pkg/constants"
)

// catalogOptions holds the options for loading a catalog.
type catalogOptions struct {
	readFS      fs.FS  // directory holding the images
	path        string // display path for errors
	extensions  []string
	imagePrefix string
	prefixSet   bool
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		extensions: []string{constants.DefaultImageExtension},
	}
}

// Option configures catalog loading.
type Option func(*catalogOptions)

// WithFS reads images from a custom fs.FS root.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithPath reads images from a directory. Unless WithImagePrefix is given,
// the directory (in slash form) also prefixes every image reference.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.readFS = os.DirFS(path)
		c.path = path
		if !c.prefixSet {
			c.imagePrefix = filepath.ToSlash(filepath.Clean(path))
		}
	}
}

// WithExtensions sets the qualifying image extensions. Matching is
// case-insensitive and the leading dot is optional.
func WithExtensions(exts ...string) Option {
	return func(c *catalogOptions) {
		c.extensions = nil
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			c.extensions = append(c.extensions, ext)
		}
	}
}

// WithImagePrefix sets the prefix joined with each file name to form the
// entry's image reference.
func WithImagePrefix(prefix string) Option {
	return func(c *catalogOptions) {
		c.imagePrefix = strings.TrimSuffix(filepath.ToSlash(prefix), "/")
		c.prefixSet = true
	}
}
