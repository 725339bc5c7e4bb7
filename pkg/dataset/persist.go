package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/save"
)

// Marshal renders the dataset in the given format. JSON uses two-space
// indentation and a trailing newline.
func (d *Dataset) Marshal(format save.Format) ([]byte, error) {
	switch format {
	case save.FormatYAML:
		data, err := yaml.MarshalWithOptions(d, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	case save.FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(d); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, &errors.ValidationError{Field: "format", Value: format, Message: "unsupported format"}
	}
}

// Save persists the dataset. With a writer the rendered document is
// written to it; otherwise it is written atomically to the path.
func (d *Dataset) Save(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	data, err := d.Marshal(options.Format())
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "dataset", err)
		}
		return nil
	}

	if options.Path() == "" {
		return &errors.ValidationError{Field: "path", Message: "an output path or writer is required"}
	}
	return writeAtomic(options.Path(), data)
}

// writeAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial dataset.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Load reads a dataset, choosing the format from the file extension.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data, save.FormatFromPath(path))
}

// Parse decodes a dataset document.
func Parse(data []byte, format save.Format) (*Dataset, error) {
	var d Dataset
	switch format {
	case save.FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
	default:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
	}
	return &d, nil
}
