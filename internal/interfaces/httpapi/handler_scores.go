package httpapi

import (
	"net/http"

	"github.com/statfield/nfl-standings/internal/domain/gamescore"
	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

type gameScoreDTO struct {
	Season        int    `json:"season"`
	Gameday       string `json:"gameday"`
	Gametime      string `json:"gametime"`
	Team          string `json:"team"`
	Opponent      string `json:"opponent"`
	Score         int    `json:"score"`
	OpponentScore int    `json:"opponent_score"`
	IsWin         bool   `json:"is_win"`
	IsLoss        bool   `json:"is_loss"`
	IsTie         bool   `json:"is_tie"`
}

type teamScoresDTO struct {
	Team   string         `json:"team"`
	Season int            `json:"season"`
	Games  []gameScoreDTO `json:"games"`
}

func (h *Handler) ListTeamScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamScores")
	defer span.End()

	team := r.PathValue("team")
	season, err := parseSeasonQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resolved, outcomes, err := h.gameScoreService.ListTeamSeason(ctx, team, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list team scores failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	games := make([]gameScoreDTO, 0, len(outcomes))
	for _, outcome := range outcomes {
		games = append(games, gameScoreToDTO(outcome))
	}

	writeSuccess(ctx, w, http.StatusOK, teamScoresDTO{
		Team:   outcomeTeam(team, outcomes),
		Season: resolved,
		Games:  games,
	})
}

func gameScoreToDTO(o gamescore.Outcome) gameScoreDTO {
	return gameScoreDTO{
		Season:        o.Season,
		Gameday:       o.Gameday.Format("2006-01-02"),
		Gametime:      o.Gametime,
		Team:          o.Team,
		Opponent:      o.Opponent,
		Score:         o.Score,
		OpponentScore: o.OpponentScore,
		IsWin:         o.IsWin,
		IsLoss:        o.IsLoss,
		IsTie:         o.IsTie,
	}
}

func outcomeTeam(requested string, outcomes []gamescore.Outcome) string {
	if len(outcomes) > 0 {
		return outcomes[0].Team
	}
	return realignment.NormalizeTeam(requested)
}
