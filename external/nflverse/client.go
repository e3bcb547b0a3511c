package nflverse

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/statfield/nfl-standings/internal/domain/schedule"
	"github.com/statfield/nfl-standings/internal/platform/logging"
	"github.com/statfield/nfl-standings/internal/platform/resilience"
	"github.com/statfield/nfl-standings/internal/usecase"
)

const (
	defaultBaseURL = "https://github.com/nflverse/nflverse-data/releases/download"
	gamesCSVPath   = "/games/games.csv"
	maxBodyBytes   = 32 << 20
	gamedayLayout  = "2006-01-02"
)

var errNFLverseTransient = crerr.New("nflverse transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client downloads the published games CSV and maps it to schedule rows.
// The feed is a single file covering every season, so all three fetch
// variants share one download path.
type Client struct {
	httpClient     *http.Client
	baseURL        string
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

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchSeason(ctx context.Context, season int) ([]schedule.RawGame, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	games, err := c.fetchGames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.RawGame, 0, 300)
	for _, game := range games {
		if game.Season == season {
			out = append(out, game)
		}
	}
	return out, nil
}

func (c *Client) FetchCurrentSeason(ctx context.Context) ([]schedule.RawGame, error) {
	games, err := c.fetchGames(ctx)
	if err != nil {
		return nil, err
	}

	latest := 0
	for _, game := range games {
		if game.Season > latest {
			latest = game.Season
		}
	}
	if latest == 0 {
		return []schedule.RawGame{}, nil
	}

	out := make([]schedule.RawGame, 0, 300)
	for _, game := range games {
		if game.Season == latest {
			out = append(out, game)
		}
	}
	return out, nil
}

func (c *Client) FetchAllSeasons(ctx context.Context) ([]schedule.RawGame, error) {
	return c.fetchGames(ctx)
}

func (c *Client) fetchGames(ctx context.Context) ([]schedule.RawGame, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "nflverse circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: schedule feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + gamesCSVPath
	out, err, _ := c.flight.Do("games-csv", func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isNFLverseCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	games, err := parseGames(raw)
	if err != nil {
		return nil, fmt.Errorf("parse games feed: %w", err)
	}
	return games, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/csv")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errNFLverseTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errNFLverseTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: feed status=%d body=%s", errNFLverseTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
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
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "nflverse request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// parseGames reads the CSV by header name so column reordering upstream
// does not break the mapping. Rows missing a season, date, or either team
// are dropped rather than failing the whole feed.
func parseGames(raw []byte) ([]schedule.RawGame, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, required := range []string{"season", "game_type", "gameday", "home_team", "away_team"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	out := make([]schedule.RawGame, 0, 4096)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		season, err := strconv.Atoi(fieldAt(record, columns, "season"))
		if err != nil || season <= 0 {
			continue
		}
		gameday, err := time.Parse(gamedayLayout, fieldAt(record, columns, "gameday"))
		if err != nil {
			continue
		}
		homeTeam := fieldAt(record, columns, "home_team")
		awayTeam := fieldAt(record, columns, "away_team")
		if homeTeam == "" || awayTeam == "" {
			continue
		}

		out = append(out, schedule.RawGame{
			Season:    season,
			GameType:  schedule.NormalizeGameType(fieldAt(record, columns, "game_type")),
			Gameday:   gameday,
			Gametime:  fieldAt(record, columns, "gametime"),
			HomeTeam:  homeTeam,
			AwayTeam:  awayTeam,
			HomeScore: parseOptionalScore(fieldAt(record, columns, "home_score")),
			AwayScore: parseOptionalScore(fieldAt(record, columns, "away_score")),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if !out[i].Gameday.Equal(out[j].Gameday) {
			return out[i].Gameday.Before(out[j].Gameday)
		}
		return out[i].HomeTeam < out[j].HomeTeam
	})
	return out, nil
}

func fieldAt(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseOptionalScore treats blank and "NA" cells as not yet played. The
// feed publishes scores as floats, so "20.0" must parse too.
func parseOptionalScore(raw string) *int {
	if raw == "" || strings.EqualFold(raw, "na") {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	score := int(value)
	return &score
}

func isNFLverseCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errNFLverseTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
