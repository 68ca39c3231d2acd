package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type Handler struct {
	loaderService *usecase.LoaderService
	reportService *usecase.ReportService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	loaderService *usecase.LoaderService,
	reportService *usecase.ReportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		loaderService: loaderService,
		reportService: reportService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.reportService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamDTO{ID: item.ID, Name: item.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeasonTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTotals")
	defer span.End()

	teamID, err := parseIDPathValue(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season := strings.TrimSpace(r.URL.Query().Get("season"))

	totals, err := h.reportService.SeasonTotals(ctx, teamID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "season totals failed", "team_id", teamID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonTotalsDTO, 0, len(totals))
	for _, row := range totals {
		items = append(items, seasonTotalsToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	var teamID int64
	if raw := strings.TrimSpace(r.URL.Query().Get("team_id")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: invalid team_id %q", usecase.ErrInvalidInput, raw))
			return
		}
		teamID = parsed
	}

	matches, err := h.reportService.Matches(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSheet")
	defer span.End()

	matchID, err := parseIDPathValue(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "text") {
		text, err := h.reportService.RenderMatchSheet(ctx, matchID)
		if err != nil {
			h.logger.WarnContext(ctx, "render match sheet failed", "match_id", matchID, "error", err)
			writeError(ctx, w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(text))
		return
	}

	sheet, err := h.reportService.MatchSheet(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match sheet failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSheetToDTO(sheet))
}

type runLoadRequest struct {
	Dir         string `json:"dir" validate:"required"`
	OnDuplicate string `json:"on_duplicate" validate:"omitempty,oneof=skip error replace"`
}

func (h *Handler) RunLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLoad")
	defer span.End()

	var payload runLoadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	policy, err := matchstats.ParseDuplicatePolicy(payload.OnDuplicate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	summary, err := h.loaderService.WithPolicy(policy).LoadDirectory(ctx, payload.Dir)
	if err != nil {
		h.logger.ErrorContext(ctx, "load run failed", "dir", payload.Dir, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if summary.Failed > 0 {
		status = http.StatusMultiStatus
	}
	writeSuccess(ctx, w, status, summary)
}

type refreshReportsRequest struct {
	Season     string `json:"season"`
	MaxWorkers int    `json:"max_workers" validate:"omitempty,min=1,max=32"`
}

func (h *Handler) RefreshReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshReports")
	defer span.End()

	var payload refreshReportsRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		if err := decoder.Decode(&payload); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
			return
		}
		if err := h.validateRequest(ctx, payload); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.reportService.RefreshSeasonReports(ctx, usecase.RefreshInput{
		Season:     payload.Season,
		MaxWorkers: payload.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "report refresh failed", "season", payload.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func parseIDPathValue(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
