package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/matchday/internal/matchfile"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultTimeout = 20 * time.Second

	headerAPIKey = "x-apisports-key"
)

var errProviderTransient = crerr.New("apifootball transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches fixture and player data and converts both into the match
// record format the loader consumes.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchRoundRecords pulls every fixture of one league round along with the
// per-player statistics and maps them into match records.
func (c *Client) FetchRoundRecords(ctx context.Context, league, season int, round string) ([]matchfile.Record, error) {
	if league <= 0 || season <= 0 {
		return nil, fmt.Errorf("%w: league and season are required", usecase.ErrInvalidInput)
	}

	var fixtures fixturesEnvelope
	query := url.Values{}
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))
	if strings.TrimSpace(round) != "" {
		query.Set("round", round)
	}
	if err := c.doJSON(ctx, "/fixtures", query, &fixtures); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	records := make([]matchfile.Record, 0, len(fixtures.Response))
	for _, item := range fixtures.Response {
		record, err := c.fetchFixtureRecord(ctx, item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (c *Client) fetchFixtureRecord(ctx context.Context, item fixtureItem) (matchfile.Record, error) {
	var players playersEnvelope
	query := url.Values{}
	query.Set("fixture", strconv.FormatInt(item.Fixture.ID, 10))
	if err := c.doJSON(ctx, "/fixtures/players", query, &players); err != nil {
		return matchfile.Record{}, fmt.Errorf("fetch fixture %d players: %w", item.Fixture.ID, err)
	}

	record := matchfile.Record{
		HomeTeam:    item.Teams.Home.Name,
		AwayTeam:    item.Teams.Away.Name,
		MatchDate:   item.Fixture.Date,
		Competition: item.League.Name,
		Season:      strconv.Itoa(item.League.Season),
	}

	for _, side := range players.Response {
		stats := make([]matchfile.PlayerStat, 0, len(side.Players))
		for _, entry := range side.Players {
			stats = append(stats, mapPlayerStat(entry))
		}
		switch side.Team.ID {
		case item.Teams.Home.ID:
			record.HomePlayers = stats
		case item.Teams.Away.ID:
			record.AwayPlayers = stats
		}
	}

	return record, nil
}

// SaveRecords writes one JSON file per record into dir, named so a
// directory listing sorts by match date. Returns the written paths.
func (c *Client) SaveRecords(dir string, records []matchfile.Record) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create output directory %s", dir)
	}

	paths := make([]string, 0, len(records))
	for idx, record := range records {
		data, err := sonic.ConfigDefault.MarshalIndent(record, "", "  ")
		if err != nil {
			return paths, crerr.Wrap(err, "encode match record")
		}

		name := fmt.Sprintf("%s_%s_vs_%s.json",
			record.Date().Format("2006-01-02"),
			slugify(record.HomeTeam),
			slugify(record.AwayTeam),
		)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, crerr.Wrapf(err, "write match record %d", idx)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "apifootball circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errProviderTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()

		req.SetRequestURI(fullURL)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set(headerAPIKey, c.token)
		}

		err := c.httpClient.DoTimeout(req, resp, c.timeout)
		status := resp.StatusCode()
		raw := append([]byte(nil), resp.Body()...)

		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)

		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: send request: %v", errProviderTransient, err)
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, status, abbreviateBody(raw))
		default:
			return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "apifootball request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func mapPlayerStat(entry playerEntry) matchfile.PlayerStat {
	stat := matchfile.PlayerStat{Name: entry.Player.Name}
	if len(entry.Statistics) == 0 {
		return stat
	}

	block := entry.Statistics[0]
	stat.Position = block.Games.Position
	stat.Minutes = matchfile.FlexInt{Value: block.Games.Minutes}
	stat.Goals = matchfile.FlexInt{Value: block.Goals.Total}
	stat.Assists = matchfile.FlexInt{Value: block.Goals.Assists}
	stat.Shots = matchfile.FlexInt{Value: block.Shots.Total}
	stat.ShotsOnTarget = matchfile.FlexInt{Value: block.Shots.On}
	stat.Passes = matchfile.FlexInt{Value: block.Passes.Total}
	stat.Tackles = matchfile.FlexInt{Value: block.Tackles.Total}
	stat.TacklesWon = matchfile.FlexInt{Value: block.Duels.Won}
	stat.Interceptions = matchfile.FlexInt{Value: block.Tackles.Interceptions}
	stat.FoulsCommitted = matchfile.FlexInt{Value: block.Fouls.Committed}
	stat.FoulsDrawn = matchfile.FlexInt{Value: block.Fouls.Drawn}
	stat.YellowCards = matchfile.FlexInt{Value: block.Cards.Yellow}
	stat.RedCards = matchfile.FlexInt{Value: block.Cards.Red}

	// The provider reports completed passes as a count in the accuracy
	// field of per-fixture stats.
	stat.PassesComplete = matchfile.FlexInt{Value: block.Passes.Accuracy}

	if rating, err := strconv.ParseFloat(strings.TrimSpace(block.Games.Rating), 64); err == nil {
		stat.Rating = matchfile.FlexFloat{Value: rating}
	}

	return stat
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func slugify(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
