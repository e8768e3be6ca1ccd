package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	"github.com/riskibarqy/league-insights/internal/domain/season"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
	"github.com/riskibarqy/league-insights/internal/platform/cache"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
)

// OverviewService derives the season analytics record for one league.
type OverviewService struct {
	leagueRepo    league.Repository
	teamRepo      team.Repository
	matchupRepo   matchup.Repository
	standingsRepo standings.Repository
	txnRepo       transaction.Repository
	store         *cache.Store
	logger        *logging.Logger
}

func NewOverviewService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchupRepo matchup.Repository,
	standingsRepo standings.Repository,
	txnRepo transaction.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *OverviewService {
	if logger == nil {
		logger = logging.Default()
	}

	return &OverviewService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		matchupRepo:   matchupRepo,
		standingsRepo: standingsRepo,
		txnRepo:       txnRepo,
		store:         store,
		logger:        logger,
	}
}

func overviewCacheKey(leagueKey string) string {
	return "overview:" + leagueKey
}

func summaryCacheKey(leagueKey string) string {
	return "summary:" + leagueKey
}

// GetLeagueOverview returns the derived overview for one league-season.
func (s *OverviewService) GetLeagueOverview(ctx context.Context, leagueKey string) (season.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.GetLeagueOverview")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return season.Overview{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		return s.buildOverview(ctx, leagueKey)
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return season.Overview{}, err
		}
		return value.(season.Overview), nil
	}

	value, err := s.store.GetOrLoad(ctx, overviewCacheKey(leagueKey), load)
	if err != nil {
		return season.Overview{}, err
	}
	overview, ok := value.(season.Overview)
	if !ok {
		return season.Overview{}, fmt.Errorf("unexpected cached overview type %T", value)
	}

	return overview, nil
}

// GetTeamSummaries returns the computed per-team season summary rows.
func (s *OverviewService) GetTeamSummaries(ctx context.Context, leagueKey string) ([]season.TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.GetTeamSummaries")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		in, err := s.loadSeasonInput(ctx, leagueKey)
		if err != nil {
			return nil, err
		}
		return season.BuildTeamSummaries(in), nil
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]season.TeamSummary), nil
	}

	value, err := s.store.GetOrLoad(ctx, summaryCacheKey(leagueKey), load)
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]season.TeamSummary)
	if !ok {
		return nil, fmt.Errorf("unexpected cached summary type %T", value)
	}

	return rows, nil
}

func (s *OverviewService) buildOverview(ctx context.Context, leagueKey string) (season.Overview, error) {
	in, err := s.loadSeasonInput(ctx, leagueKey)
	if err != nil {
		return season.Overview{}, err
	}

	overview, err := season.BuildOverview(in)
	if err != nil {
		if err == season.ErrNoTeams {
			return season.Overview{}, fmt.Errorf("%w: league=%s has no recorded teams", ErrNotFound, leagueKey)
		}
		return season.Overview{}, fmt.Errorf("build overview league=%s: %w", leagueKey, err)
	}

	s.logger.DebugContext(ctx, "built league overview",
		"league_key", leagueKey,
		"placements", len(overview.FinalPlacements),
		"playoff_rounds", len(overview.PlayoffBracket.Rounds),
	)

	return overview, nil
}

func (s *OverviewService) loadSeasonInput(ctx context.Context, leagueKey string) (season.Input, error) {
	lg, found, err := s.leagueRepo.GetByKey(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("get league %s: %w", leagueKey, err)
	}
	if !found {
		return season.Input{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueKey)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list teams league=%s: %w", leagueKey, err)
	}
	entries, err := s.matchupRepo.ListEntriesByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list matchup entries league=%s: %w", leagueKey, err)
	}
	metas, err := s.matchupRepo.ListMetaByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list matchup meta league=%s: %w", leagueKey, err)
	}
	rows, err := s.standingsRepo.ListByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list standings league=%s: %w", leagueKey, err)
	}
	txns, err := s.txnRepo.ListByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list transactions league=%s: %w", leagueKey, err)
	}
	participants, err := s.txnRepo.ListParticipantsByLeague(ctx, leagueKey)
	if err != nil {
		return season.Input{}, fmt.Errorf("list transaction participants league=%s: %w", leagueKey, err)
	}

	matchups, err := assembleMatchups(leagueKey, entries, metas)
	if err != nil {
		return season.Input{}, err
	}

	return season.Input{
		Season:       lg.Season,
		LeagueKey:    leagueKey,
		Teams:        teams,
		Matchups:     matchups,
		Standings:    rows,
		Transactions: assembleTransactions(txns, participants),
	}, nil
}

type matchupKey struct {
	week      int
	matchupID int
}

// assembleMatchups joins per-team entries with matchup metadata. A
// duplicate (week, matchup, team) entry means the upstream sync wrote
// conflicting rows and poisons every downstream number, so the whole
// league-season pass fails.
func assembleMatchups(leagueKey string, entries []matchup.Entry, metas []matchup.Meta) ([]season.Matchup, error) {
	metaByKey := make(map[matchupKey]matchup.Meta, len(metas))
	for _, meta := range metas {
		key := matchupKey{week: meta.Week, matchupID: meta.MatchupID}
		if _, dup := metaByKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate matchup meta league=%s week=%d matchup=%d",
				ErrDataIntegrity, leagueKey, meta.Week, meta.MatchupID)
		}
		metaByKey[key] = meta
	}

	grouped := make(map[matchupKey][]matchup.Entry)
	seen := make(map[matchup.Entry]struct{}, len(entries))
	for _, entry := range entries {
		dedup := matchup.Entry{Week: entry.Week, MatchupID: entry.MatchupID, TeamKey: entry.TeamKey}
		if _, dup := seen[dedup]; dup {
			return nil, fmt.Errorf("%w: duplicate matchup entry league=%s week=%d matchup=%d team=%s",
				ErrDataIntegrity, leagueKey, entry.Week, entry.MatchupID, entry.TeamKey)
		}
		seen[dedup] = struct{}{}

		key := matchupKey{week: entry.Week, matchupID: entry.MatchupID}
		grouped[key] = append(grouped[key], entry)
	}

	keys := make([]matchupKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].week != keys[j].week {
			return keys[i].week < keys[j].week
		}
		return keys[i].matchupID < keys[j].matchupID
	})

	out := make([]season.Matchup, 0, len(keys))
	for _, key := range keys {
		group := grouped[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].TeamKey < group[j].TeamKey
		})

		m := season.Matchup{Week: key.week, MatchupID: key.matchupID}
		if meta, ok := metaByKey[key]; ok {
			m.IsPlayoffs = meta.IsPlayoffs
			m.IsConsolation = meta.IsConsolation
			m.DeclaredWinner = meta.WinnerTeamKey
		}
		for _, entry := range group {
			m.Sides = append(m.Sides, season.Side{
				TeamKey:   entry.TeamKey,
				Points:    entry.Points,
				WinStatus: entry.WinStatus,
			})
		}
		out = append(out, m)
	}

	return out, nil
}

func assembleTransactions(txns []transaction.Transaction, participants []transaction.Participant) []season.Transaction {
	teamsByTxn := make(map[string]map[string]struct{}, len(txns))
	for _, p := range participants {
		teams, ok := teamsByTxn[p.TransactionKey]
		if !ok {
			teams = make(map[string]struct{})
			teamsByTxn[p.TransactionKey] = teams
		}
		if p.SourceTeamKey != "" {
			teams[p.SourceTeamKey] = struct{}{}
		}
		if p.DestinationTeamKey != "" {
			teams[p.DestinationTeamKey] = struct{}{}
		}
	}

	ordered := make([]transaction.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp != ordered[j].Timestamp {
			return ordered[i].Timestamp < ordered[j].Timestamp
		}
		return ordered[i].Key < ordered[j].Key
	})

	out := make([]season.Transaction, 0, len(ordered))
	for _, txn := range ordered {
		item := season.Transaction{
			Key:       txn.Key,
			Type:      txn.Type,
			Timestamp: txn.Timestamp,
		}
		for teamKey := range teamsByTxn[txn.Key] {
			item.TeamKeys = append(item.TeamKeys, teamKey)
		}
		sort.Strings(item.TeamKeys)
		out = append(out, item)
	}

	return out
}
