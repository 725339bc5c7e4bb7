// Package docs renders a dataset as a markdown value table.
package docs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/petvalues/internal/cmd/table"
	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
)

// DefaultTitle heads the generated document.
const DefaultTitle = "Pet Values"

// Generator renders markdown documents.
type Generator struct {
	title string
	sort  table.SortKey
}

// Option configures a Generator.
type Option func(*Generator)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		if title != "" {
			g.title = title
		}
	}
}

// WithSort sets the row order of the value table.
func WithSort(key table.SortKey) Option {
	return func(g *Generator) {
		g.sort = key
	}
}

// New creates a new Generator.
func New(opts ...Option) *Generator {
	g := &Generator{title: DefaultTitle, sort: table.SortValue}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Write renders ds to w.
func (g *Generator) Write(w io.Writer, ds *dataset.Dataset) error {
	doc := md.NewMarkdown(w)

	doc.H1(g.title)
	doc.PlainText(md.Italic(fmt.Sprintf("Updated %s using the %s of all reported values.", ds.Updated, ds.Method)))
	doc.LF()

	doc.H2("Summary")
	doc.BulletList(
		fmt.Sprintf("%d pets", len(ds.Pets)),
		fmt.Sprintf("%d with a value", ds.Valued()),
		fmt.Sprintf("Sources: %s", strings.Join(sourceNames(ds), ", ")),
	)

	doc.H2("Values")
	pets := table.SortPets(ds.Pets, g.sort)
	rows := make([][]string, 0, len(pets))
	for _, p := range pets {
		rows = append(rows, []string{
			p.Name,
			p.Rarity,
			table.FormatValue(p.Value),
			fmt.Sprintf("%d", len(p.Sources)),
			md.Code(p.Image),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Rarity", "Value", "Sources", "Image"},
		Rows:   rows,
	})

	doc.H2("By Rarity")
	doc.Table(md.TableSet{
		Header: []string{"Rarity", "Pets"},
		Rows:   rarityRows(ds.Pets),
	})

	return doc.Build()
}

// Generate renders ds into the file at path, creating parent directories.
func (g *Generator) Generate(ctx context.Context, ds *dataset.Dataset, path string) error {
	var buf bytes.Buffer
	if err := g.Write(&buf, ds); err != nil {
		return errors.WrapResource("render", "docs", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.FromContext(ctx).Info().
		Str("path", path).
		Int("pets", len(ds.Pets)).
		Msg("Generated value docs")
	return nil
}

func sourceNames(ds *dataset.Dataset) []string {
	seen := map[string]struct{}{}
	for _, p := range ds.Pets {
		for id := range p.Sources {
			seen[string(id)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return []string{"none"}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// rarityRows counts pets per rarity, most common first.
func rarityRows(pets []dataset.Pet) [][]string {
	counts := map[string]int{}
	for _, p := range pets {
		counts[p.Rarity]++
	}
	rarities := make([]string, 0, len(counts))
	for r := range counts {
		rarities = append(rarities, r)
	}
	sort.Slice(rarities, func(i, j int) bool {
		if counts[rarities[i]] != counts[rarities[j]] {
			return counts[rarities[i]] > counts[rarities[j]]
		}
		return rarities[i] < rarities[j]
	})

	rows := make([][]string, 0, len(rarities))
	for _, r := range rarities {
		rows = append(rows, []string{r, fmt.Sprintf("%d", counts[r])})
	}
	return rows
}
