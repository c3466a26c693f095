package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/gridstash/internal/config"
	"github.com/gravitas-games/gridstash/internal/journal"
	"github.com/gravitas-games/gridstash/internal/spawner"
	"github.com/gravitas-games/gridstash/pkg/inventory"
)

func TestSimulateConservesSpawnedUnits(t *testing.T) {
	c := config.Default()
	c.Spawner.Count = 40
	c.Journal.Dir = t.TempDir()
	reg := inventory.SampleRegistry()

	res, j, err := simulate(c, reg)
	require.NoError(t, err)
	require.NotNil(t, j)
	require.NoError(t, j.Close())

	sp, err := spawner.New(reg, c.Spawner.Seed)
	require.NoError(t, err)
	spawned := make(map[*inventory.Definition]int)
	for _, it := range sp.SpawnN(c.Spawner.Count) {
		spawned[it.Def] += it.Amount()
	}

	for def, want := range spawned {
		got := res.Player.Main.Count(def) + res.Player.Stash.Count(def)
		for _, it := range res.Ground {
			if it.Def == def {
				got += it.Amount()
			}
		}
		assert.Equal(t, want, got, "units of %s", def.ID)
	}

	files, err := filepath.Glob(filepath.Join(c.Journal.Dir, "inventory-*.jsonl.zst"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	entries, err := journal.ReadAll(files[0])
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestSimulateWithoutJournal(t *testing.T) {
	c := config.Default()
	c.Spawner.Count = 3
	res, j, err := simulate(c, inventory.SampleRegistry())
	require.NoError(t, err)
	assert.Nil(t, j)
	assert.Equal(t, 4, res.Player.Main.Width())
	assert.Equal(t, 3, res.Player.Stash.Height())
}

func TestSimulateEmptyCatalog(t *testing.T) {
	_, _, err := simulate(config.Default(), inventory.NewRegistry())
	assert.ErrorIs(t, err, spawner.ErrEmptyCatalog)
}

func TestRenderGrid(t *testing.T) {
	reg := inventory.SampleRegistry()
	inv := inventory.New("main", 3, 2)
	inv.TryPlaceItem(inventory.NewItem(reg.MustLookup("pickaxe"), 1), 0, 0)
	inv.TryPlaceItem(inventory.NewItem(reg.MustLookup("wood"), 4), 2, 1)

	var buf bytes.Buffer
	renderGrid(&buf, inv)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "main (3x2, 2 items)", lines[0])
	assert.Equal(t, " A . .", lines[1])
	assert.Equal(t, " A . B", lines[2])
	assert.Contains(t, lines[4], "Wood")
	assert.Contains(t, lines[4], "x4")
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("GRIDSTASH_CONFIG", "")
	os.Unsetenv("GRIDSTASH_CONFIG")
	assert.Equal(t, defaultConfigPath, resolveConfigPath())

	t.Setenv("GRIDSTASH_CONFIG", "/etc/gridstash.yaml")
	assert.Equal(t, "/etc/gridstash.yaml", resolveConfigPath())

	require.NoError(t, rootCmd.PersistentFlags().Set("config", "flag.yaml"))
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("config", "")
		rootCmd.PersistentFlags().Lookup("config").Changed = false
	})
	assert.Equal(t, "flag.yaml", resolveConfigPath())
}

func TestLoadConfigFallsBackOnlyForDefaultPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
