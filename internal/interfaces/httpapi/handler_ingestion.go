package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-insights/internal/usecase"
)

func (h *Handler) IngestLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestLeagues")
	defer span.End()

	var req ingestLeaguesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := req.toDomain()
	if err := h.ingestionService.UpsertLeagues(ctx, items); err != nil {
		h.logger.ErrorContext(ctx, "ingest leagues failed", "count", len(items), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestAcceptedDTO{Accepted: len(items)})
}

func (h *Handler) IngestTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeams")
	defer span.End()

	var req ingestTeamsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := req.toDomain()
	if err := h.ingestionService.ReplaceTeams(ctx, req.LeagueKey, items); err != nil {
		h.logger.ErrorContext(ctx, "ingest teams failed", "league_key", req.LeagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestAcceptedDTO{LeagueKey: req.LeagueKey, Accepted: len(items)})
}

func (h *Handler) IngestMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatchups")
	defer span.End()

	var req ingestMatchupsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, meta := req.toDomain()
	if err := h.ingestionService.ReplaceMatchups(ctx, req.LeagueKey, entries, meta); err != nil {
		h.logger.ErrorContext(ctx, "ingest matchups failed", "league_key", req.LeagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestAcceptedDTO{LeagueKey: req.LeagueKey, Accepted: len(entries)})
}

func (h *Handler) IngestStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestStandings")
	defer span.End()

	var req ingestStandingsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := req.toDomain()
	if err := h.ingestionService.ReplaceStandings(ctx, req.LeagueKey, rows); err != nil {
		h.logger.ErrorContext(ctx, "ingest standings failed", "league_key", req.LeagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestAcceptedDTO{LeagueKey: req.LeagueKey, Accepted: len(rows)})
}

func (h *Handler) IngestTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTransactions")
	defer span.End()

	var req ingestTransactionsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	txns, participants := req.toDomain()
	if err := h.ingestionService.ReplaceTransactions(ctx, req.LeagueKey, txns, participants); err != nil {
		h.logger.ErrorContext(ctx, "ingest transactions failed", "league_key", req.LeagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestAcceptedDTO{LeagueKey: req.LeagueKey, Accepted: len(txns)})
}
