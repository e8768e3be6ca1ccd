package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
	"github.com/riskibarqy/league-insights/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	overviewService  *usecase.OverviewService
	exportService    *usecase.ExportService
	ingestionService *usecase.IngestionService
	logger           *logging.Logger
	validator        *validator.Validate
	ready            func(ctx context.Context) error
}

func NewHandler(
	leagueService *usecase.LeagueService,
	overviewService *usecase.OverviewService,
	exportService *usecase.ExportService,
	ingestionService *usecase.IngestionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		overviewService:  overviewService,
		exportService:    exportService,
		ingestionService: ingestionService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// SetReadinessCheck installs the storage probe served by /readyz.
// Without one the endpoint always reports ready.
func (h *Handler) SetReadinessCheck(check func(ctx context.Context) error) {
	h.ready = check
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type ingestLeaguesRequest struct {
	Leagues []ingestLeagueRecord `json:"leagues" validate:"required,min=1,dive"`
}

type ingestLeagueRecord struct {
	LeagueKey string `json:"league_key" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Season    string `json:"season" validate:"required,max=10"`
	GameCode  string `json:"game_code" validate:"omitempty,max=20"`
	NumTeams  int    `json:"num_teams" validate:"gte=0"`
}

type ingestTeamsRequest struct {
	LeagueKey string             `json:"league_key" validate:"required"`
	Teams     []ingestTeamRecord `json:"teams" validate:"required,min=1,dive"`
}

type ingestTeamRecord struct {
	TeamKey      string `json:"team_key" validate:"required"`
	Name         string `json:"name" validate:"required,max=200"`
	ManagerNames string `json:"manager_names" validate:"omitempty,max=400"`
}

type ingestMatchupsRequest struct {
	LeagueKey string                     `json:"league_key" validate:"required"`
	Entries   []ingestMatchupEntryRecord `json:"entries" validate:"required,min=1,dive"`
	Meta      []ingestMatchupMetaRecord  `json:"meta" validate:"omitempty,dive"`
}

type ingestMatchupEntryRecord struct {
	Week            int      `json:"week" validate:"required,gt=0"`
	MatchupID       int      `json:"matchup_id" validate:"required,gt=0"`
	TeamKey         string   `json:"team_key" validate:"required"`
	Points          *float64 `json:"points,omitempty"`
	ProjectedPoints *float64 `json:"projected_points,omitempty"`
	WinStatus       string   `json:"win_status" validate:"omitempty,oneof=win loss tie"`
}

type ingestMatchupMetaRecord struct {
	Week          int    `json:"week" validate:"required,gt=0"`
	MatchupID     int    `json:"matchup_id" validate:"required,gt=0"`
	IsPlayoffs    bool   `json:"is_playoffs"`
	IsConsolation bool   `json:"is_consolation"`
	WinnerTeamKey string `json:"winner_team_key" validate:"omitempty,max=60"`
}

type ingestStandingsRequest struct {
	LeagueKey string                 `json:"league_key" validate:"required"`
	Rows      []ingestStandingRecord `json:"rows" validate:"required,min=1,dive"`
}

type ingestStandingRecord struct {
	TeamKey       string  `json:"team_key" validate:"required"`
	Rank          int     `json:"rank" validate:"gte=0"`
	Wins          int     `json:"wins" validate:"gte=0"`
	Losses        int     `json:"losses" validate:"gte=0"`
	Ties          int     `json:"ties" validate:"gte=0"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

type ingestTransactionsRequest struct {
	LeagueKey    string                               `json:"league_key" validate:"required"`
	Transactions []ingestTransactionRecord            `json:"transactions" validate:"omitempty,dive"`
	Participants []ingestTransactionParticipantRecord `json:"participants" validate:"omitempty,dive"`
}

type ingestTransactionRecord struct {
	TransactionKey string `json:"transaction_key" validate:"required"`
	Type           string `json:"type" validate:"required,max=40"`
	Timestamp      int64  `json:"timestamp" validate:"gte=0"`
}

type ingestTransactionParticipantRecord struct {
	TransactionKey     string `json:"transaction_key" validate:"required"`
	PlayerKey          string `json:"player_key" validate:"required"`
	Type               string `json:"type" validate:"omitempty,max=40"`
	SourceTeamKey      string `json:"source_team_key" validate:"omitempty,max=60"`
	DestinationTeamKey string `json:"destination_team_key" validate:"omitempty,max=60"`
}

type exportOverviewsRequest struct {
	LeagueKeys []string `json:"league_keys" validate:"omitempty,dive,required"`
	MaxWorkers int      `json:"max_workers" validate:"gte=0,lte=16"`
}

type leagueDTO struct {
	LeagueKey string `json:"league_key"`
	Name      string `json:"name"`
	Season    string `json:"season"`
	GameCode  string `json:"game_code,omitempty"`
	NumTeams  int    `json:"num_teams"`
}

type teamDTO struct {
	TeamKey      string `json:"team_key"`
	LeagueKey    string `json:"league_key"`
	Name         string `json:"name"`
	ManagerNames string `json:"manager_names,omitempty"`
}

type ingestAcceptedDTO struct {
	LeagueKey string `json:"league_key,omitempty"`
	Accepted  int    `json:"accepted"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		LeagueKey: v.Key,
		Name:      v.Name,
		Season:    v.Season,
		GameCode:  v.GameCode,
		NumTeams:  v.NumTeams,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		TeamKey:      v.Key,
		LeagueKey:    v.LeagueKey,
		Name:         v.Name,
		ManagerNames: v.ManagerNames,
	}
}

func (r ingestLeaguesRequest) toDomain() []league.League {
	out := make([]league.League, 0, len(r.Leagues))
	for _, item := range r.Leagues {
		out = append(out, league.League{
			Key:      item.LeagueKey,
			Name:     item.Name,
			Season:   item.Season,
			GameCode: item.GameCode,
			NumTeams: item.NumTeams,
		})
	}

	return out
}

func (r ingestTeamsRequest) toDomain() []team.Team {
	out := make([]team.Team, 0, len(r.Teams))
	for _, item := range r.Teams {
		out = append(out, team.Team{
			Key:          item.TeamKey,
			LeagueKey:    r.LeagueKey,
			Name:         item.Name,
			ManagerNames: item.ManagerNames,
		})
	}

	return out
}

func (r ingestMatchupsRequest) toDomain() ([]matchup.Entry, []matchup.Meta) {
	entries := make([]matchup.Entry, 0, len(r.Entries))
	for _, item := range r.Entries {
		entries = append(entries, matchup.Entry{
			LeagueKey:       r.LeagueKey,
			Week:            item.Week,
			MatchupID:       item.MatchupID,
			TeamKey:         item.TeamKey,
			Points:          item.Points,
			ProjectedPoints: item.ProjectedPoints,
			WinStatus:       item.WinStatus,
		})
	}

	meta := make([]matchup.Meta, 0, len(r.Meta))
	for _, item := range r.Meta {
		meta = append(meta, matchup.Meta{
			LeagueKey:     r.LeagueKey,
			Week:          item.Week,
			MatchupID:     item.MatchupID,
			IsPlayoffs:    item.IsPlayoffs,
			IsConsolation: item.IsConsolation,
			WinnerTeamKey: item.WinnerTeamKey,
		})
	}

	return entries, meta
}

func (r ingestStandingsRequest) toDomain() []standings.Row {
	out := make([]standings.Row, 0, len(r.Rows))
	for _, item := range r.Rows {
		out = append(out, standings.Row{
			LeagueKey:     r.LeagueKey,
			TeamKey:       item.TeamKey,
			Rank:          item.Rank,
			Wins:          item.Wins,
			Losses:        item.Losses,
			Ties:          item.Ties,
			PointsFor:     item.PointsFor,
			PointsAgainst: item.PointsAgainst,
		})
	}

	return out
}

func (r ingestTransactionsRequest) toDomain() ([]transaction.Transaction, []transaction.Participant) {
	txns := make([]transaction.Transaction, 0, len(r.Transactions))
	for _, item := range r.Transactions {
		txns = append(txns, transaction.Transaction{
			Key:       item.TransactionKey,
			LeagueKey: r.LeagueKey,
			Type:      item.Type,
			Timestamp: item.Timestamp,
		})
	}

	participants := make([]transaction.Participant, 0, len(r.Participants))
	for _, item := range r.Participants {
		participants = append(participants, transaction.Participant{
			TransactionKey:     item.TransactionKey,
			PlayerKey:          item.PlayerKey,
			Type:               item.Type,
			SourceTeamKey:      item.SourceTeamKey,
			DestinationTeamKey: item.DestinationTeamKey,
		})
	}

	return txns, participants
}
