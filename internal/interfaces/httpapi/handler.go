package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/statfield/nfl-standings/internal/platform/logging"
	"github.com/statfield/nfl-standings/internal/usecase"
)

type Handler struct {
	standingsService   *usecase.StandingsService
	gameScoreService   *usecase.GameScoreService
	refreshService     *usecase.RefreshService
	realignmentService *usecase.RealignmentService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	gameScoreService *usecase.GameScoreService,
	refreshService *usecase.RefreshService,
	realignmentService *usecase.RealignmentService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService:   standingsService,
		gameScoreService:   gameScoreService,
		refreshService:     refreshService,
		realignmentService: realignmentService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSeasonQuery reads an optional ?season= query parameter.
func parseSeasonQuery(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return nil, nil
	}

	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return nil, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput)
	}
	return &season, nil
}
