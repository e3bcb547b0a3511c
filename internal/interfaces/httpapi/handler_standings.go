package httpapi

import (
	"net/http"

	"github.com/statfield/nfl-standings/internal/usecase"
)

type standingsDTO struct {
	Season    int                      `json:"season"`
	Standings usecase.GroupedStandings `json:"standings"`
}

type seasonsDTO struct {
	Seasons []int `json:"seasons"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	season, err := parseSeasonQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resolved, standings, err := h.standingsService.GetStandings(ctx, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsDTO{
		Season:    resolved,
		Standings: standings,
	})
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.standingsService.GetAvailableSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if seasons == nil {
		seasons = []int{}
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsDTO{Seasons: seasons})
}
