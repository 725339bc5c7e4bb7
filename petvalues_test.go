package petvalues

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/save"
	"github.com/agentstation/petvalues/pkg/sources"
)

// stubSource returns fixed records or an error.
type stubSource struct {
	id      sources.ID
	records []sources.Record
	err     error
}

func (s *stubSource) ID() sources.ID { return s.id }

func (s *stubSource) Fetch(context.Context) ([]sources.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]sources.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

var fixedClock = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func catalogFS(files ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, f := range files {
		fsys[f] = &fstest.MapFile{Data: []byte("png")}
	}
	return fsys
}

func TestImportEndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data", "pets.json")

	res, err := Import(context.Background(),
		WithCatalogFS(catalogFS("Cat.png", "Dragon.PNG", "notes.txt", "Axolotl.png")),
		WithOutputPath(out),
		WithClock(fixedClock),
		WithSourceList(
			&stubSource{id: "A", records: []sources.Record{
				{Name: "Cat", Value: 100},
				{Name: "Dragon", Value: 0},
				{Name: "Unicorn", Value: 999},
			}},
			&stubSource{id: "B", records: []sources.Record{
				{Name: "cat", Value: 200, Rarity: "Common"},
				{Name: "dragon", Value: 50},
			}},
			&stubSource{id: "C", err: errors.New("boom")},
		),
	)
	require.NoError(t, err)

	want := &dataset.Dataset{
		Updated: "2024-05-01",
		Method:  "median",
		Pets: []dataset.Pet{
			{Name: "Axolotl", Rarity: "Unknown", Value: 0, Sources: map[sources.ID]float64{}, Image: "pets/Axolotl.png"},
			{Name: "Cat", Rarity: "Common", Value: 150, Sources: map[sources.ID]float64{"A": 100, "B": 200}, Image: "pets/Cat.png"},
			{Name: "Dragon", Rarity: "Unknown", Value: 50, Sources: map[sources.ID]float64{"A": 0, "B": 50}, Image: "pets/Dragon.PNG"},
		},
	}
	if diff := cmp.Diff(want, res.Dataset); diff != "" {
		t.Errorf("Import() dataset mismatch (-want +got):\n%s", diff)
	}

	written, err := dataset.Load(out)
	require.NoError(t, err)
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("written dataset mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, out, res.Output)
	assert.False(t, res.DryRun)
	assert.Equal(t, []sources.ID{"C"}, res.FailedSources())
	assert.Equal(t, 1, res.Reconcile.Orphans)
	assert.Equal(t, Changes{Added: 3}, res.Changes)
	assert.Contains(t, res.Summary(), "3 pets (2 valued, 2 matched)")
}

func TestImportDryRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pets.json")
	var buf bytes.Buffer

	res, err := Import(context.Background(),
		WithCatalogFS(catalogFS("Cat.png")),
		WithOutputPath(out),
		WithDryRun(&buf),
		WithClock(fixedClock),
		WithSourceList(),
	)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Empty(t, res.Output)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "dry run must not write the output file")

	parsed, err := dataset.Parse(buf.Bytes(), save.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, res.Dataset, parsed)
}

func TestImportYAMLOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pets.yml")

	_, err := Import(context.Background(),
		WithCatalogFS(catalogFS("Cat.png")),
		WithOutputPath(out),
		WithSourceList(&stubSource{id: "A", records: []sources.Record{{Name: "Cat", Value: 3}}}),
	)
	require.NoError(t, err)

	loaded, err := dataset.Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Pets, 1)
	assert.InDelta(t, 3, loaded.Pets[0].Value, 0)
}

func TestImportMissingCatalogIsFatal(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pets.json")

	_, err := Import(context.Background(),
		WithCatalogDir(filepath.Join(dir, "missing")),
		WithOutputPath(out),
		WithSourceList(),
	)
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportHooksAgainstPreviousDataset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pets.json")
	fsys := catalogFS("Cat.png", "Dog.png")

	first, err := New(
		WithCatalogFS(fsys),
		WithOutputPath(out),
		WithSourceList(&stubSource{id: "A", records: []sources.Record{{Name: "Cat", Value: 10}}}),
	)
	require.NoError(t, err)
	_, err = first.Import(context.Background())
	require.NoError(t, err)

	delete(fsys, "Dog.png")
	fsys["Bat.png"] = &fstest.MapFile{Data: []byte("png")}

	second, err := New(
		WithCatalogFS(fsys),
		WithOutputPath(out),
		WithSourceList(&stubSource{id: "A", records: []sources.Record{{Name: "Cat", Value: 20}}}),
	)
	require.NoError(t, err)

	var added, removed []string
	var updated [][2]float64
	second.OnPetAdded(func(p dataset.Pet) { added = append(added, p.Name) })
	second.OnPetRemoved(func(p dataset.Pet) { removed = append(removed, p.Name) })
	second.OnPetUpdated(func(old, new dataset.Pet) { updated = append(updated, [2]float64{old.Value, new.Value}) })

	res, err := second.Import(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bat"}, added)
	assert.Equal(t, []string{"Dog"}, removed)
	assert.Equal(t, [][2]float64{{10, 20}}, updated)
	assert.Equal(t, Changes{Added: 1, Updated: 1, Removed: 1}, res.Changes)
}

func TestImportUnchangedRerun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pets.json")
	opts := []Option{
		WithCatalogFS(catalogFS("Cat.png", "Dog.png")),
		WithOutputPath(out),
		WithSourceList(&stubSource{id: "A", records: []sources.Record{{Name: "Cat", Value: 10}}}),
	}

	_, err := Import(context.Background(), opts...)
	require.NoError(t, err)
	res, err := Import(context.Background(), opts...)
	require.NoError(t, err)
	assert.False(t, res.Changes.HasChanges())
}

func TestImportUnreadableBaselineIsIgnored(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	out := filepath.Join(t.TempDir(), "pets.json")
	require.NoError(t, os.WriteFile(out, []byte("{broken"), 0o644))

	res, err := Import(ctx,
		WithCatalogFS(catalogFS("Cat.png")),
		WithOutputPath(out),
		WithSourceList(),
	)
	require.NoError(t, err)
	assert.Equal(t, Changes{Added: 1}, res.Changes)
	tl.AssertContains(t, "Ignoring unreadable previous dataset")
}

func TestImportFromConfiguredSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/zack":
			_, _ = w.Write([]byte(`<h3>Cat</h3><b>Value:</b> 1,000<h3>Dog</h3><b>Value:</b> 40`))
		case "/moon":
			_, _ = w.Write([]byte(`<script type="application/json" id="pet-values">[{"name":"cat","value":"3,000","rarity":"Rare"}]</script>`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	var buf bytes.Buffer
	res, err := Import(context.Background(),
		WithCatalogFS(catalogFS("Cat.png", "Dog.png")),
		WithDryRun(&buf),
		WithHTTPTimeout(5*time.Second),
		WithSources([]sources.Config{
			{ID: "zack", Kind: sources.KindHTMLPattern, URL: srv.URL + "/zack"},
			{ID: "moonvalues", Kind: sources.KindEmbeddedJSON, URL: srv.URL + "/moon"},
			{ID: "broken", Kind: sources.KindHTMLPattern, URL: srv.URL + "/broken"},
			{ID: "valuesking", Kind: sources.KindPlaceholder},
		}),
	)
	require.NoError(t, err)

	cat, ok := res.Dataset.Find("Cat")
	require.True(t, ok)
	assert.Equal(t, float64(2000), cat.Value)
	assert.Equal(t, "Rare", cat.Rarity)
	assert.Equal(t, map[sources.ID]float64{"zack": 1000, "moonvalues": 3000}, cat.Sources)

	dog, ok := res.Dataset.Find("Dog")
	require.True(t, ok)
	assert.Equal(t, float64(40), dog.Value)

	assert.Equal(t, []sources.ID{"broken"}, res.FailedSources())
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty catalog dir", WithCatalogDir("")},
		{"empty output", WithOutputPath(" ")},
		{"no extensions", WithExtensions()},
		{"bad timeout", WithHTTPTimeout(0)},
		{"nil clock", WithClock(nil)},
		{"nil reconciler", WithReconciler(nil)},
		{"bad source", WithSources([]sources.Config{{ID: "x", Kind: "ftp"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestDefaultSources(t *testing.T) {
	imp, err := New()
	require.NoError(t, err)

	ids := make([]sources.ID, 0, 4)
	for _, s := range imp.Sources() {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []sources.ID{"zack", "moonvalues", "cosmovalues", "valuesking"}, ids)
}
