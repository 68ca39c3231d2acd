package httpapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func newTestRouter(t *testing.T) (http.Handler, *usecase.LoaderService) {
	t.Helper()

	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository()
	stats := memory.NewMatchStatsRepository(teams, players)
	resolver := usecase.NewResolverService(teams, players, logging.NewNop())
	loader := usecase.NewLoaderService(resolver, stats, matchstats.PolicySkip, logging.NewNop())
	report := usecase.NewReportService(teams, stats, stats, nil, logging.NewNop())
	handler := NewHandler(loader, report, logging.NewNop())

	return NewRouter(handler, logging.NewNop(), nil), loader
}

func seedMatchDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	body := `{
		"home_team": "Arsenal",
		"away_team": "Chelsea",
		"date": "2024-03-09",
		"competition": "Premier League",
		"season": "2023/24",
		"home_players": [{"name": "John Smith", "position": "FW", "minutes": 90, "goals": 2, "passes": 40, "passes_completed": 30, "rating": 8.1}],
		"away_players": [{"name": "Dan Cole", "minutes": 90, "rating": 6.5}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "derby.json"), []byte(body), 0o644); err != nil {
		t.Fatalf("seed match file: %v", err)
	}
	return dir
}

func decodeEnvelopeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body["data"]
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRunLoadThenReadReports(t *testing.T) {
	router, _ := newTestRouter(t)
	dir := seedMatchDir(t)

	payload := `{"dir": ` + jsonQuote(dir) + `, "on_duplicate": "skip"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/loads", strings.NewReader(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("load run: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeEnvelopeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected summary object, got %T", decodeEnvelopeData(t, rec))
	}
	if got := data["loaded"]; got != float64(1) {
		t.Fatalf("loaded = %v, want 1", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: expected 200, got %d", rec.Code)
	}
	teams, ok := decodeEnvelopeData(t, rec).([]any)
	if !ok || len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %v", teams)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/1/sheet", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("match sheet: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	sheet, ok := decodeEnvelopeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected sheet object")
	}
	lines, _ := sheet["lines"].([]any)
	if len(lines) != 2 {
		t.Fatalf("expected 2 sheet lines, got %d", len(lines))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/1/season-totals?season=2023/24", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("season totals: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRunLoadRejectsMissingDir(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/loads", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRunLoadRejectsBadPolicy(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/loads", strings.NewReader(`{"dir": "/tmp", "on_duplicate": "upsert"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetMatchSheetTextFormat(t *testing.T) {
	router, _ := newTestRouter(t)
	dir := seedMatchDir(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/loads", strings.NewReader(`{"dir": `+jsonQuote(dir)+`}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("load run: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/1/sheet?format=text", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Arsenal vs Chelsea") {
		t.Fatalf("rendered sheet missing header:\n%s", rec.Body.String())
	}
}

func TestGetMatchSheetNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/42/sheet", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func jsonQuote(s string) string {
	b, _ := sonic.Marshal(s)
	return string(b)
}
