package catalogs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/petvalues/pkg/catalogs"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/names"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"Mega Neon Cat.png":   &fstest.MapFile{},
		"Golden Dragon.PNG":   &fstest.MapFile{},
		"King’s Crown.png":    &fstest.MapFile{},
		"notes.txt":           &fstest.MapFile{},
		"Shadow Wolf.webp":    &fstest.MapFile{},
		"archive/Old Cat.png": &fstest.MapFile{},
		".png":                &fstest.MapFile{},
	}
}

func TestNewFromFS(t *testing.T) {
	catalog, err := catalogs.New(catalogs.WithFS(testFS()), catalogs.WithImagePrefix("pets"))
	require.NoError(t, err)

	entries := catalog.Entries()
	require.Len(t, entries, 3)

	// fs.ReadDir sorts by file name
	assert.Equal(t, "Golden Dragon", entries[0].Name)
	assert.Equal(t, "pets/Golden Dragon.PNG", entries[0].Image)
	assert.Equal(t, "King’s Crown", entries[1].Name)
	assert.Equal(t, names.Key("king s crown"), entries[1].Key)
	assert.Equal(t, "Mega Neon Cat", entries[2].Name)
	assert.Equal(t, names.Key("mega neon cat"), entries[2].Key)
}

func TestNewWithExtensions(t *testing.T) {
	catalog, err := catalogs.New(
		catalogs.WithFS(testFS()),
		catalogs.WithExtensions("png", ".WEBP"),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, catalog.Len())
	assert.True(t, catalog.Has("shadow wolf"))
	assert.Equal(t, "Shadow Wolf.webp", catalog.Lookup("shadow wolf")[0].Image, "no prefix without a path")
}

func TestNewWithPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pets")
	require.NoError(t, os.Mkdir(dir, 0o755))
	for _, f := range []string{"b.png", "a.png", "c.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
	}

	catalog, err := catalogs.New(catalogs.WithPath(dir))
	require.NoError(t, err)

	entries := catalog.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "a.png")), entries[0].Image)
}

func TestNewImagePrefixBeforePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cat.png"), nil, 0o644))

	catalog, err := catalogs.New(catalogs.WithImagePrefix("assets/pets/"), catalogs.WithPath(dir))
	require.NoError(t, err)
	assert.Equal(t, "assets/pets/Cat.png", catalog.Entries()[0].Image)
}

func TestNewMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := catalogs.New(catalogs.WithPath(missing))
	require.Error(t, err)

	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, missing, ioErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewValidation(t *testing.T) {
	_, err := catalogs.New()
	assert.True(t, errors.IsValidationError(err))

	_, err = catalogs.New(catalogs.WithFS(testFS()), catalogs.WithExtensions())
	assert.True(t, errors.IsValidationError(err))
}

func TestCatalogLookupDuplicates(t *testing.T) {
	catalog := catalogs.FromEntries(
		catalogs.NewEntry("Cat", "pets/Cat.png"),
		catalogs.NewEntry("cat!", "pets/cat!.png"),
		catalogs.NewEntry("???", "pets/???.png"),
	)

	assert.Len(t, catalog.Lookup("cat"), 2)
	assert.False(t, catalog.Has(""), "empty keys never match")
	assert.Equal(t, 3, catalog.Len())
}
