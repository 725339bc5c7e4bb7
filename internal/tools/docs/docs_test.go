package docs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/sources"
)

func testDataset() *dataset.Dataset {
	return dataset.New(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "median", []dataset.Pet{
		{Name: "Cat", Rarity: "Common", Value: 1200, Sources: map[sources.ID]float64{"zack": 1200}, Image: "pets/Cat.png"},
		{Name: "Dragon", Rarity: "Legendary", Value: 50000, Sources: map[sources.ID]float64{"zack": 50000, "moonvalues": 50000}, Image: "pets/Dragon.png"},
		{Name: "Dog", Rarity: "Common", Image: "pets/Dog.png"},
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Write(&buf, testDataset()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Pet Values"))
	assert.Contains(t, out, "Updated 2024-05-01 using the median")
	assert.Contains(t, out, "3 pets")
	assert.Contains(t, out, "2 with a value")
	assert.Contains(t, out, "Sources: moonvalues, zack")
	assert.Contains(t, out, "50,000")
	assert.Contains(t, out, "Legendary")

	// Sorted by value, the most valuable pet comes first.
	assert.Less(t, strings.Index(out, "Dragon"), strings.Index(out, "Cat"))
}

func TestWriteCustomTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(WithTitle("Tap Simulator")).Write(&buf, testDataset()))
	assert.True(t, strings.HasPrefix(buf.String(), "# Tap Simulator"))
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "VALUES.md")
	require.NoError(t, New().Generate(context.Background(), testDataset(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Pet Values")
}

func TestRarityRows(t *testing.T) {
	rows := rarityRows(testDataset().Pets)
	assert.Equal(t, [][]string{{"Common", "2"}, {"Legendary", "1"}}, rows)
}
