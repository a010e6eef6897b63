package community

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_AppendReadRoundTrip(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "community.db"))
	require.NoError(t, err)

	ctx := context.Background()
	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	recs := []Record{
		{Timestamp: ts, Total: 100, Devices: 80, Activities: 15, AITools: 5},
		{Timestamp: ts.Add(time.Hour), Total: 200, Devices: 160, Activities: 30, AITools: 10},
	}
	for _, rec := range recs {
		require.NoError(t, store.Append(ctx, rec))
	}

	got, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 100, got[0].Total, 1e-9)
	assert.InDelta(t, 160, got[1].Devices, 1e-9)
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "community.db"))
	require.NoError(t, err)

	got, err := store.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
