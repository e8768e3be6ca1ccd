package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
	"github.com/riskibarqy/league-insights/internal/platform/cache"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
)

const leaguesCacheKey = "leagues:all"

// IngestionService writes synced league records into the store and
// invalidates any derived overview caches for the touched league.
type IngestionService struct {
	leagueRepo    league.Repository
	teamRepo      team.Repository
	matchupRepo   matchup.Repository
	standingsRepo standings.Repository
	txnRepo       transaction.Repository
	store         *cache.Store
	logger        *logging.Logger
}

func NewIngestionService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchupRepo matchup.Repository,
	standingsRepo standings.Repository,
	txnRepo transaction.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		matchupRepo:   matchupRepo,
		standingsRepo: standingsRepo,
		txnRepo:       txnRepo,
		store:         store,
		logger:        logger,
	}
}

func (s *IngestionService) UpsertLeagues(ctx context.Context, items []league.League) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertLeagues")
	defer span.End()

	if len(items) == 0 {
		return fmt.Errorf("%w: leagues are required", ErrInvalidInput)
	}
	for idx := range items {
		items[idx].Key = strings.TrimSpace(items[idx].Key)
		items[idx].Name = strings.TrimSpace(items[idx].Name)
		if err := items[idx].Validate(); err != nil {
			return fmt.Errorf("%w: league key=%s: %v", ErrInvalidInput, items[idx].Key, err)
		}
	}

	if err := s.leagueRepo.UpsertBatch(ctx, items); err != nil {
		return fmt.Errorf("upsert leagues: %w", err)
	}

	if s.store != nil {
		s.store.Delete(ctx, leaguesCacheKey)
	}
	s.logger.InfoContext(ctx, "leagues upserted", "count", len(items))
	return nil
}

func (s *IngestionService) ReplaceTeams(ctx context.Context, leagueKey string, items []team.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceTeams")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	for idx := range items {
		items[idx].Key = strings.TrimSpace(items[idx].Key)
		if items[idx].Key == "" {
			return fmt.Errorf("%w: team key is required", ErrInvalidInput)
		}
		if items[idx].LeagueKey != leagueKey {
			return fmt.Errorf("%w: team %s belongs to league %s, not %s",
				ErrInvalidInput, items[idx].Key, items[idx].LeagueKey, leagueKey)
		}
	}

	if err := s.teamRepo.ReplaceByLeague(ctx, leagueKey, items); err != nil {
		return fmt.Errorf("replace teams league=%s: %w", leagueKey, err)
	}

	s.invalidateLeague(ctx, leagueKey)
	s.logger.InfoContext(ctx, "teams replaced", "league_key", leagueKey, "count", len(items))
	return nil
}

func (s *IngestionService) ReplaceMatchups(ctx context.Context, leagueKey string, entries []matchup.Entry, meta []matchup.Meta) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceMatchups")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	for _, entry := range entries {
		if entry.LeagueKey != leagueKey {
			return fmt.Errorf("%w: matchup entry week=%d team=%s belongs to league %s, not %s",
				ErrInvalidInput, entry.Week, entry.TeamKey, entry.LeagueKey, leagueKey)
		}
		if entry.Week <= 0 {
			return fmt.Errorf("%w: matchup entry team=%s has week %d", ErrInvalidInput, entry.TeamKey, entry.Week)
		}
		if strings.TrimSpace(entry.TeamKey) == "" {
			return fmt.Errorf("%w: matchup entry week=%d matchup=%d is missing a team key",
				ErrInvalidInput, entry.Week, entry.MatchupID)
		}
	}
	for _, m := range meta {
		if m.LeagueKey != leagueKey {
			return fmt.Errorf("%w: matchup meta week=%d matchup=%d belongs to league %s, not %s",
				ErrInvalidInput, m.Week, m.MatchupID, m.LeagueKey, leagueKey)
		}
	}

	// Reject payloads the overview assembly would refuse anyway, so a
	// bad sync fails at write time instead of at read time.
	if _, err := assembleMatchups(leagueKey, entries, meta); err != nil {
		return err
	}

	if err := s.matchupRepo.ReplaceByLeague(ctx, leagueKey, entries, meta); err != nil {
		return fmt.Errorf("replace matchups league=%s: %w", leagueKey, err)
	}

	s.invalidateLeague(ctx, leagueKey)
	s.logger.InfoContext(ctx, "matchups replaced",
		"league_key", leagueKey, "entries", len(entries), "meta", len(meta))
	return nil
}

func (s *IngestionService) ReplaceStandings(ctx context.Context, leagueKey string, rows []standings.Row) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceStandings")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.LeagueKey != leagueKey {
			return fmt.Errorf("%w: standings row team=%s belongs to league %s, not %s",
				ErrInvalidInput, row.TeamKey, row.LeagueKey, leagueKey)
		}
		if strings.TrimSpace(row.TeamKey) == "" {
			return fmt.Errorf("%w: standings row is missing a team key", ErrInvalidInput)
		}
		if _, dup := seen[row.TeamKey]; dup {
			return fmt.Errorf("%w: duplicate standings row league=%s team=%s",
				ErrDataIntegrity, leagueKey, row.TeamKey)
		}
		seen[row.TeamKey] = struct{}{}
	}

	if err := s.standingsRepo.ReplaceByLeague(ctx, leagueKey, rows); err != nil {
		return fmt.Errorf("replace standings league=%s: %w", leagueKey, err)
	}

	s.invalidateLeague(ctx, leagueKey)
	s.logger.InfoContext(ctx, "standings replaced", "league_key", leagueKey, "count", len(rows))
	return nil
}

func (s *IngestionService) ReplaceTransactions(ctx context.Context, leagueKey string, txns []transaction.Transaction, participants []transaction.Participant) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceTransactions")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	keys := make(map[string]struct{}, len(txns))
	for _, txn := range txns {
		if strings.TrimSpace(txn.Key) == "" {
			return fmt.Errorf("%w: transaction key is required", ErrInvalidInput)
		}
		if txn.LeagueKey != leagueKey {
			return fmt.Errorf("%w: transaction %s belongs to league %s, not %s",
				ErrInvalidInput, txn.Key, txn.LeagueKey, leagueKey)
		}
		if _, dup := keys[txn.Key]; dup {
			return fmt.Errorf("%w: duplicate transaction league=%s key=%s",
				ErrDataIntegrity, leagueKey, txn.Key)
		}
		keys[txn.Key] = struct{}{}
	}
	for _, p := range participants {
		if _, ok := keys[p.TransactionKey]; !ok {
			return fmt.Errorf("%w: participant references unknown transaction league=%s key=%s",
				ErrInvalidInput, leagueKey, p.TransactionKey)
		}
	}

	if err := s.txnRepo.ReplaceByLeague(ctx, leagueKey, txns, participants); err != nil {
		return fmt.Errorf("replace transactions league=%s: %w", leagueKey, err)
	}

	s.invalidateLeague(ctx, leagueKey)
	s.logger.InfoContext(ctx, "transactions replaced",
		"league_key", leagueKey, "transactions", len(txns), "participants", len(participants))
	return nil
}

func (s *IngestionService) invalidateLeague(ctx context.Context, leagueKey string) {
	if s.store == nil {
		return
	}
	s.store.Delete(ctx, overviewCacheKey(leagueKey))
	s.store.Delete(ctx, summaryCacheKey(leagueKey))
	s.store.Delete(ctx, leaguesCacheKey)
}
