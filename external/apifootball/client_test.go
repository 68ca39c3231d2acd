package apifootball

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/matchday/internal/matchfile"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const fixturesBody = `{
	"response": [
		{
			"fixture": {"id": 101, "date": "2024-03-09"},
			"league": {"name": "Premier League", "season": 2023, "round": "Regular Season - 28"},
			"teams": {"home": {"id": 1, "name": "Arsenal"}, "away": {"id": 2, "name": "Chelsea"}}
		}
	]
}`

const playersBody = `{
	"response": [
		{
			"team": {"id": 1, "name": "Arsenal"},
			"players": [
				{
					"player": {"id": 11, "name": "John Smith"},
					"statistics": [
						{
							"games": {"minutes": 90, "position": "F", "rating": "8.1"},
							"goals": {"total": 2, "assists": 1},
							"shots": {"total": 5, "on": 3},
							"passes": {"total": 40, "accuracy": 30},
							"tackles": {"total": 1, "interceptions": 0},
							"duels": {"won": 6},
							"fouls": {"drawn": 2, "committed": 1},
							"cards": {"yellow": 0, "red": 0}
						}
					]
				}
			]
		},
		{
			"team": {"id": 2, "name": "Chelsea"},
			"players": [
				{
					"player": {"id": 21, "name": "Dan Cole"},
					"statistics": [
						{
							"games": {"minutes": 90, "position": "D", "rating": "6.9"},
							"passes": {"total": 62, "accuracy": 58}
						}
					]
				}
			]
		}
	]
}`

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/fixtures", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fixture") != "" {
			t.Fatalf("player stats requested on /fixtures")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixturesBody))
	})
	mux.HandleFunc("/fixtures/players", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fixture") != "101" {
			t.Errorf("unexpected fixture id %q", r.URL.Query().Get("fixture"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(playersBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchRoundRecords(t *testing.T) {
	server := newProviderServer(t)
	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Logger:  logging.NewNop(),
	})

	records, err := client.FetchRoundRecords(context.Background(), 39, 2023, "Regular Season - 28")
	if err != nil {
		t.Fatalf("FetchRoundRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	record := records[0]
	if record.HomeTeam != "Arsenal" || record.AwayTeam != "Chelsea" {
		t.Fatalf("unexpected teams: %q vs %q", record.HomeTeam, record.AwayTeam)
	}
	if record.Competition != "Premier League" || record.Season != "2023" {
		t.Fatalf("unexpected metadata: %+v", record)
	}
	if len(record.HomePlayers) != 1 || len(record.AwayPlayers) != 1 {
		t.Fatalf("unexpected roster sizes: %d home, %d away", len(record.HomePlayers), len(record.AwayPlayers))
	}

	smith := record.HomePlayers[0]
	if smith.Name != "John Smith" || smith.Goals.Value != 2 || smith.PassesComplete.Value != 30 {
		t.Fatalf("unexpected home stat mapping: %+v", smith)
	}
	if smith.Rating.Value != 8.1 {
		t.Fatalf("rating = %v, want 8.1", smith.Rating.Value)
	}
}

func TestSaveRecordsRoundTripsThroughParser(t *testing.T) {
	server := newProviderServer(t)
	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Logger:  logging.NewNop(),
	})

	records, err := client.FetchRoundRecords(context.Background(), 39, 2023, "")
	if err != nil {
		t.Fatalf("FetchRoundRecords: %v", err)
	}

	dir := t.TempDir()
	paths, err := client.SaveRecords(dir, records)
	if err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d files, want 1", len(paths))
	}

	parsed, issues, err := matchfile.ParseFile(paths[0])
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if parsed.HomeTeam != "Arsenal" || len(parsed.HomePlayers) != 1 {
		t.Fatalf("round trip lost data: %+v", parsed)
	}
}

func TestFetchRoundRecordsNonRetryableStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "invalid key"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "bad-token",
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	if _, err := client.FetchRoundRecords(context.Background(), 39, 2023, ""); err == nil {
		t.Fatalf("expected provider error")
	}
}
