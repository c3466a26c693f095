package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJournalRecordsInventoryEvents(t *testing.T) {
	at := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	j := New(t.TempDir(), "inv", WithClock(fixedClock(at)))

	reg := inventory.SampleRegistry()
	wood := reg.MustLookup("wood")
	inv := inventory.New("main", 4, 3)
	j.Attach(inv)
	j.Attach(inv) // attaching twice records once

	a := inventory.NewItem(wood, 5)
	inv.TryPlaceItem(a, 1, 2)
	b := inventory.NewItem(wood, 2)
	resp, displaced := inv.TryPlaceItem(b, 1, 2)
	require.Equal(t, inventory.Replaced, resp)
	require.Equal(t, a, displaced)

	require.NoError(t, j.Close())
	assert.Zero(t, j.Errors())

	entries, err := ReadAll(j.Path(at))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "ItemAdded", entries[0].Event)
	assert.Equal(t, a.ID, entries[0].ItemID)
	assert.Equal(t, inventory.ItemID("wood"), entries[0].Kind)
	assert.Equal(t, "main", entries[0].Inventory)
	require.NotNil(t, entries[0].Origin)
	assert.Equal(t, inventory.Point{X: 1, Y: 2}, *entries[0].Origin)

	assert.Equal(t, "ItemRemoved", entries[1].Event)
	assert.Equal(t, a.ID, entries[1].ItemID)
	assert.Nil(t, entries[1].Origin)

	assert.Equal(t, "ItemAdded", entries[2].Event)
	assert.Equal(t, b.ID, entries[2].ItemID)
	assert.Equal(t, 2, entries[2].Amount)
	assert.True(t, entries[2].Time.Equal(at))
}

func TestJournalDetach(t *testing.T) {
	at := time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC)
	j := New(t.TempDir(), "inv", WithClock(fixedClock(at)))

	herb := inventory.SampleRegistry().MustLookup("herb")
	inv := inventory.New("main", 2, 2)
	j.Attach(inv)
	inv.TryQuickStackItem(inventory.NewItem(herb, 1))
	j.Detach(inv)
	inv.TryQuickStackItem(inventory.NewItem(herb, 30))
	require.NoError(t, j.Close())

	entries, err := ReadAll(j.Path(at))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAppendRotatesOnEventHour(t *testing.T) {
	first := time.Date(2026, 3, 4, 10, 59, 0, 0, time.UTC)
	second := first.Add(2 * time.Minute)

	j := New(t.TempDir(), "rot")
	require.NoError(t, j.Append(Entry{Time: first, Event: "one"}))
	require.NoError(t, j.Append(Entry{Time: second, Event: "two"}))
	require.NoError(t, j.Append(Entry{Time: second, Event: "three"}))
	// a late event for the previous hour reopens its file
	require.NoError(t, j.Append(Entry{Time: first, Event: "late"}))
	require.NoError(t, j.Close())

	a, err := ReadAll(j.Path(first))
	require.NoError(t, err)
	b, err := ReadAll(j.Path(second))
	require.NoError(t, err)
	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.Equal(t, "one", a[0].Event)
	assert.Equal(t, "late", a[1].Event)
	assert.Equal(t, "three", b[1].Event)
}

func TestAppendAcrossReopen(t *testing.T) {
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		j := New(dir, "app")
		require.NoError(t, j.Append(Entry{Time: at, Event: name}))
		require.NoError(t, j.Close())
	}

	entries, err := ReadAll(New(dir, "app").Path(at))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[1].Event)
}

func TestCloseWithoutEntries(t *testing.T) {
	j := New(t.TempDir(), "empty")
	assert.NoError(t, j.Close())
	assert.NoError(t, j.Close())
}
