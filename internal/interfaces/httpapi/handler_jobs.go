package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/statfield/nfl-standings/internal/usecase"
)

type internalRefreshJobRequest struct {
	Season     *int   `json:"season" validate:"omitempty,gt=0"`
	All        bool   `json:"all"`
	DispatchID string `json:"dispatch_id"`
}

type internalBootstrapJobRequest struct {
	Overwrite bool `json:"overwrite"`
}

type bootstrapJobDTO struct {
	SeededRows int                   `json:"seeded_rows"`
	Refresh    usecase.RefreshResult `json:"refresh"`
}

type recentScrapeDTO struct {
	ScrapeDate     string `json:"scrape_date"`
	SeasonsScraped string `json:"seasons_scraped"`
	Success        bool   `json:"success"`
	ErrorMessage   string `json:"error_message,omitempty"`
	RecordsUpdated int    `json:"records_updated"`
}

func (h *Handler) RunRefreshJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshJob")
	defer span.End()

	if h.refreshService == nil {
		writeError(ctx, w, fmt.Errorf("%w: refresh service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req internalRefreshJobRequest
	if err := decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var result usecase.RefreshResult
	if req.All {
		result = h.refreshService.RefreshAllSeasons(ctx)
	} else {
		result = h.refreshService.RefreshSeason(ctx, req.Season)
	}
	if !result.Success {
		h.logger.WarnContext(ctx, "refresh job failed",
			"dispatch_id", req.DispatchID,
			"all", req.All,
			"error", result.Error,
		)
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunBootstrapJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunBootstrapJob")
	defer span.End()

	if h.realignmentService == nil || h.refreshService == nil {
		writeError(ctx, w, fmt.Errorf("%w: bootstrap services are not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req internalBootstrapJobRequest
	if err := decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	seeded, err := h.realignmentService.Initialize(ctx, req.Overwrite)
	if err != nil {
		h.logger.ErrorContext(ctx, "bootstrap seed failed", "overwrite", req.Overwrite, "error", err)
		writeError(ctx, w, err)
		return
	}

	result := h.refreshService.RefreshAllSeasons(ctx)
	if !result.Success {
		h.logger.WarnContext(ctx, "bootstrap refresh failed", "error", result.Error)
	}

	writeSuccess(ctx, w, http.StatusOK, bootstrapJobDTO{
		SeededRows: seeded,
		Refresh:    result,
	})
}

func (h *Handler) ListRecentScrapes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentScrapes")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	entries, err := h.refreshService.RecentScrapes(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list recent scrapes failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]recentScrapeDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, recentScrapeDTO{
			ScrapeDate:     entry.ScrapeDate.UTC().Format("2006-01-02T15:04:05Z"),
			SeasonsScraped: entry.SeasonsScraped,
			Success:        entry.Success,
			ErrorMessage:   entry.ErrorMessage,
			RecordsUpdated: entry.RecordsUpdated,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func decodeJobRequest(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
