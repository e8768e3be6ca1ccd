package httpapi

import (
	"net/http"
	"strings"
)

// GetLeagueOverview serves the derived season analytics record. The
// domain overview already carries its wire JSON tags, so it goes out
// without an intermediate DTO.
func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueKey := strings.TrimSpace(r.PathValue("leagueKey"))
	overview, err := h.overviewService.GetLeagueOverview(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "get league overview failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) ListTeamSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSummaries")
	defer span.End()

	leagueKey := strings.TrimSpace(r.PathValue("leagueKey"))
	rows, err := h.overviewService.GetTeamSummaries(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "list team summaries failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}
