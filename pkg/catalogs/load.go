package catalogs

import (
	"io/fs"
	"path"
	"strings"

	"github.com/agentstation/petvalues/pkg/errors"
)

// New enumerates the configured directory into a catalog. Entries follow
// the directory listing order (sorted by file name). A missing or
// unreadable directory is returned as an *errors.IOError.
func New(opts ...Option) (*Catalog, error) {
	options := catalogDefaults().apply(opts...)
	if options.readFS == nil {
		return nil, &errors.ValidationError{
			Field:   "path",
			Message: "catalog directory is required",
		}
	}
	if len(options.extensions) == 0 {
		return nil, &errors.ValidationError{
			Field:   "extensions",
			Message: "at least one image extension is required",
		}
	}

	dirEntries, err := fs.ReadDir(options.readFS, ".")
	if err != nil {
		return nil, errors.WrapIO("read", options.path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name, ok := stripExtension(de.Name(), options.extensions)
		if !ok {
			continue
		}
		entries = append(entries, NewEntry(name, imageRef(options.imagePrefix, de.Name())))
	}

	return FromEntries(entries...), nil
}

// stripExtension removes the first matching extension, case-insensitively.
func stripExtension(file string, exts []string) (string, bool) {
	lower := strings.ToLower(file)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) && len(file) > len(ext) {
			return file[:len(file)-len(ext)], true
		}
	}
	return "", false
}

func imageRef(prefix, file string) string {
	if prefix == "" || prefix == "." {
		return file
	}
	return path.Join(prefix, file)
}
