package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadflow-cli/internal/model"
)

func TestStaticAdapter(t *testing.T) {
	a := StaticAdapter{
		SourceName: "tx_sos",
		Records:    []model.RawCandidate{{CompanyName: "ACME LLC"}},
	}
	assert.Equal(t, "tx_sos", a.Name())

	got, err := a.Candidates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Mutating the returned slice must not leak back into the adapter.
	got[0].CompanyName = "CHANGED"
	again, err := a.Candidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ACME LLC", again[0].CompanyName)
}

func TestFileAdapter(t *testing.T) {
	dump := `[
		{"company_name": "ACME CONSTRUCTION LLC", "state": "TX", "natural_key": "0805123456",
		 "signal_type": "new_formation", "signal_date": "2026-03-01"},
		{"company_name": "DELTA FREIGHT INC", "state": "TX", "natural_key": "0805999999",
		 "signal_type": "new_formation", "signal_date": "2026-03-02"}
	]`
	path := filepath.Join(t.TempDir(), "tx_sos.json")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	a := FileAdapter{SourceName: "tx_sos", Path: path}
	got, err := a.Candidates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ACME CONSTRUCTION LLC", got[0].CompanyName)
	assert.Equal(t, model.SignalNewFormation, got[0].SignalType)
	assert.Equal(t, "0805999999", got[1].NaturalKey)
}

func TestFileAdapter_MissingFile(t *testing.T) {
	a := FileAdapter{SourceName: "tx_sos", Path: "/nope/tx_sos.json"}
	_, err := a.Candidates(context.Background())
	assert.Error(t, err)
}

func TestFileAdapter_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	a := FileAdapter{SourceName: "tx_sos", Path: path}
	_, err := a.Candidates(context.Background())
	assert.Error(t, err)
}

func TestSocrataAdapter_FiltersAndMaps(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("$where")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"contractor_name": "BIGTEX CONSTRUCTION LLC", "permit_number": "P-1001",
			 "issue_date": "2026-03-05T00:00:00.000", "zip_code": "75201"},
			{"contractor_name": "John Smith", "permit_number": "P-1002", "issue_date": "2026-03-05T00:00:00.000"},
			{"applicant_name": "MUSIC CITY BUILDERS INC", "permit_number": "P-1003", "issue_date": "2026-03-06T00:00:00.000"},
			{"contractor_name": "JS", "permit_number": "P-1004", "issue_date": "2026-03-06T00:00:00.000"}
		]`))
	}))
	defer srv.Close()

	a := NewSocrataAdapter(SocrataOptions{
		Endpoint: srv.URL,
		City:     "Dallas",
		State:    "TX",
		DaysBack: 7,
	})
	a.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	got, err := a.Candidates(context.Background())
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "issue_date > '2026-03-03T00:00:00'")

	// The individual and the too-short name are filtered out.
	require.Len(t, got, 2)
	assert.Equal(t, "BIGTEX CONSTRUCTION LLC", got[0].CompanyName)
	assert.Equal(t, "Dallas", got[0].City)
	assert.Equal(t, "TX", got[0].State)
	assert.Equal(t, "75201", got[0].Zip)
	assert.Equal(t, "P-1001", got[0].NaturalKey)
	assert.Equal(t, model.SignalBuildingPermit, got[0].SignalType)
	assert.Equal(t, "2026-03-05", got[0].SignalDate)
	assert.Equal(t, "MUSIC CITY BUILDERS INC", got[1].CompanyName)
}

func TestSocrataAdapter_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewSocrataAdapter(SocrataOptions{Endpoint: srv.URL, City: "Austin", State: "TX"})
	_, err := a.Candidates(context.Background())
	assert.Error(t, err)
}

func TestLooksLikeCompany(t *testing.T) {
	assert.True(t, looksLikeCompany("Acme Builders LLC"))
	assert.True(t, looksLikeCompany("SMITH CONSTRUCTION"))
	assert.False(t, looksLikeCompany("Jane Doe"))
}

func TestIsoDate(t *testing.T) {
	assert.Equal(t, "2026-03-05", isoDate("2026-03-05T00:00:00.000"))
	assert.Equal(t, "2026-03-05", isoDate("2026-03-05"))
	assert.Equal(t, "", isoDate(""))
}
