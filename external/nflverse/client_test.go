package nflverse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/statfield/nfl-standings/internal/platform/logging"
	"github.com/statfield/nfl-standings/internal/platform/resilience"
)

const gamesCSVFixture = `game_id,season,game_type,week,gameday,weekday,gametime,away_team,away_score,home_team,home_score
2023_01_DET_KC,2023,REG,1,2023-09-07,Thursday,20:20,DET,21.0,KC,20.0
2023_19_CLE_HOU,2023,WC,19,2024-01-13,Saturday,16:30,CLE,14.0,HOU,45.0
2024_01_BAL_KC,2024,REG,1,2024-09-05,Thursday,20:20,BAL,20.0,KC,27.0
2024_02_CIN_KC,2024,REG,2,2024-09-15,Sunday,16:25,CIN,,KC,
`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		Logger:     logging.NewNop(),
	})
	return client, server
}

func TestClient_FetchSeason_FiltersAndParses(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gamesCSVPath {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(gamesCSVFixture))
	})

	games, err := client.FetchSeason(context.Background(), 2024)
	if err != nil {
		t.Fatalf("fetch season: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games for 2024, got %d", len(games))
	}

	first := games[0]
	if first.HomeTeam != "KC" || first.AwayTeam != "BAL" {
		t.Fatalf("unexpected teams: %+v", first)
	}
	if first.HomeScore == nil || *first.HomeScore != 27 {
		t.Fatalf("expected home score 27, got %v", first.HomeScore)
	}
	if first.Gameday.Format("2006-01-02") != "2024-09-05" {
		t.Fatalf("unexpected gameday: %v", first.Gameday)
	}

	unplayed := games[1]
	if unplayed.HomeScore != nil || unplayed.AwayScore != nil {
		t.Fatalf("expected nil scores for unplayed game, got %+v", unplayed)
	}
}

func TestClient_FetchSeason_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(gamesCSVFixture))
	})

	if _, err := client.FetchSeason(context.Background(), 0); err == nil {
		t.Fatal("expected error for season 0")
	}
}

func TestClient_FetchCurrentSeason_PicksLatest(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(gamesCSVFixture))
	})

	games, err := client.FetchCurrentSeason(context.Background())
	if err != nil {
		t.Fatalf("fetch current season: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games for latest season, got %d", len(games))
	}
	for _, game := range games {
		if game.Season != 2024 {
			t.Fatalf("expected only 2024 games, got %+v", game)
		}
	}
}

func TestClient_FetchAllSeasons_KeepsPostseasonRows(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(gamesCSVFixture))
	})

	games, err := client.FetchAllSeasons(context.Background())
	if err != nil {
		t.Fatalf("fetch all seasons: %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}

	wildcard := games[1]
	if wildcard.GameType != "WC" {
		t.Fatalf("expected wildcard row preserved, got %+v", wildcard)
	}
	if wildcard.Completed() {
		t.Fatal("postseason game must not count as a completed regular-season game")
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(gamesCSVFixture))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	games, err := client.FetchAllSeasons(context.Background())
	if err != nil {
		t.Fatalf("fetch after retry: %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}
	if got := attempts.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestClient_DoesNotRetryNotFound(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	client.maxRetries = 3

	if _, err := client.FetchAllSeasons(context.Background()); err == nil {
		t.Fatal("expected error for 404")
	}
	if got := attempts.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.FetchAllSeasons(context.Background()); err == nil {
		t.Fatal("expected first request to fail")
	}
	if _, err := client.FetchAllSeasons(context.Background()); err == nil {
		t.Fatal("expected open circuit to reject the second request")
	}
	if got := client.breaker.State(); got != resilience.CircuitStateOpen {
		t.Fatalf("expected open circuit, got %v", got)
	}
}

func TestParseGames_MissingColumn(t *testing.T) {
	t.Parallel()

	if _, err := parseGames([]byte("season,gameday\n2024,2024-09-05\n")); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestParseGames_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	raw := []byte(`season,game_type,gameday,gametime,home_team,away_team,home_score,away_score
2024,REG,2024-09-05,20:20,KC,BAL,27,20
,REG,2024-09-08,13:00,CIN,NE,10,3
2024,REG,not-a-date,13:00,DET,CHI,31,17
2024,REG,2024-09-08,13:00,,CHI,31,17
`)

	games, err := parseGames(raw)
	if err != nil {
		t.Fatalf("parse games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected only the valid row, got %d", len(games))
	}
	if games[0].HomeTeam != "KC" {
		t.Fatalf("unexpected row: %+v", games[0])
	}
}
