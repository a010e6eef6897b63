//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frabecrazy/digital-footprint/internal/api"
	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// TestSubmissionFlow exercises the full pipeline end to end: several
// submissions posted to the HTTP API, each appended to a CSV community
// store, then read back through the medians endpoint.
func TestSubmissionFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storePath := filepath.Join(t.TempDir(), "community.csv")
	store := community.NewCSVStore(storePath)
	stats := community.NewService(store, zerolog.Nop())
	server := api.New(footprint.NewCalculator(), stats, zerolog.Nop())

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	// Three respondents with different browsing hours produce three
	// distinct totals; the middle one becomes the median.
	hours := []float64{1, 2, 4}
	for _, h := range hours {
		payload := map[string]any{
			"role": "Student",
			"devices": []map[string]any{{
				"type":        "Laptop Computer",
				"years":       2,
				"condition":   "New",
				"ownership":   "Personal",
				"end_of_life": "I bring it to a certified e-waste collection center",
			}},
			"activities": map[string]float64{"Web browsing": h},
		}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		resp, err := http.Post(ts.URL+"/api/v1/footprint", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	}

	// All three rows survived the round trip through the CSV file.
	records, err := store.Records(t.Context())
	require.NoError(t, err)
	require.Len(t, records, len(hours))

	resp, err := http.Get(ts.URL + "/api/v1/community/medians")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var medians struct {
		Available bool               `json:"available"`
		Medians   map[string]float64 `json:"medians"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&medians))
	require.True(t, medians.Available)

	// Median total corresponds to the 2 h/day respondent.
	wantTotal := 339.9616 + 2*250*0.0264
	assert.InDelta(t, wantTotal, medians.Medians["Total Emissions"], 1e-6,
		fmt.Sprintf("median should match the middle submission, got %v", medians.Medians))
}
