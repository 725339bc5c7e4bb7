package importcmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/petvalues"
	"github.com/agentstation/petvalues/internal/appcontext"
	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/save"
)

// mockApp returns an app whose importer reads an in-memory catalog and
// has no sources.
func mockApp() *appcontext.Mock {
	catalog := fstest.MapFS{
		"Cat.png": &fstest.MapFile{},
		"Dog.png": &fstest.MapFile{},
	}
	return &appcontext.Mock{
		ImporterFunc: func(opts ...petvalues.Option) (petvalues.Importer, error) {
			base := []petvalues.Option{
				petvalues.WithCatalogFS(catalog),
				petvalues.WithSourceList(),
			}
			return petvalues.New(append(base, opts...)...)
		},
	}
}

func TestOptionsOnlyChangedFlags(t *testing.T) {
	cmd := NewCommand(mockApp())
	flags := &Flags{}
	opts, err := flags.Options(cmd)
	require.NoError(t, err)
	assert.Empty(t, opts)

	require.NoError(t, cmd.Flags().Set("output", "out.yaml"))
	require.NoError(t, cmd.Flags().Set("ext", "png,webp"))
	flags = &Flags{Output: "out.yaml", Extensions: []string{"png", "webp"}}
	opts, err = flags.Options(cmd)
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestOptionsRejectsUnknownFormat(t *testing.T) {
	cmd := NewCommand(mockApp())
	_, err := (&Flags{Format: "xml"}).Options(cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDryRunPrintsDataset(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(mockApp())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run", "--image-prefix", "img"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var ds dataset.Dataset
	require.NoError(t, json.Unmarshal(out.Bytes(), &ds))
	require.Len(t, ds.Pets, 2)
	assert.Equal(t, "img/Cat.png", ds.Pets[0].Image)
	assert.Equal(t, "median", ds.Method)
}

func TestDryRunYAML(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(mockApp())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run", "--format", "yaml"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	ds, err := dataset.Parse(out.Bytes(), save.FormatYAML)
	require.NoError(t, err)
	assert.Len(t, ds.Pets, 2)
}

func TestImporterError(t *testing.T) {
	app := &appcontext.Mock{
		ImporterFunc: func(...petvalues.Option) (petvalues.Importer, error) {
			return nil, errors.New("boom")
		},
	}
	cmd := NewCommand(app)
	cmd.SetArgs([]string{"--dry-run"})
	assert.EqualError(t, cmd.ExecuteContext(context.Background()), "boom")
}
