package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-insights/internal/domain/matchup"
)

type MatchupRepository struct {
	mu              sync.RWMutex
	entriesByLeague map[string][]matchup.Entry
	metaByLeague    map[string][]matchup.Meta
}

func NewMatchupRepository(entries []matchup.Entry, meta []matchup.Meta) *MatchupRepository {
	entriesByLeague := make(map[string][]matchup.Entry)
	for _, item := range entries {
		entriesByLeague[item.LeagueKey] = append(entriesByLeague[item.LeagueKey], item)
	}
	metaByLeague := make(map[string][]matchup.Meta)
	for _, item := range meta {
		metaByLeague[item.LeagueKey] = append(metaByLeague[item.LeagueKey], item)
	}

	return &MatchupRepository{
		entriesByLeague: entriesByLeague,
		metaByLeague:    metaByLeague,
	}
}

func (r *MatchupRepository) ListEntriesByLeague(_ context.Context, leagueKey string) ([]matchup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entriesByLeague[leagueKey]
	out := make([]matchup.Entry, 0, len(entries))
	out = append(out, entries...)

	return out, nil
}

func (r *MatchupRepository) ListMetaByLeague(_ context.Context, leagueKey string) ([]matchup.Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta := r.metaByLeague[leagueKey]
	out := make([]matchup.Meta, 0, len(meta))
	out = append(out, meta...)

	return out, nil
}

func (r *MatchupRepository) ReplaceByLeague(_ context.Context, leagueKey string, entries []matchup.Entry, meta []matchup.Meta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	outEntries := make([]matchup.Entry, len(entries))
	copy(outEntries, entries)
	r.entriesByLeague[leagueKey] = outEntries

	outMeta := make([]matchup.Meta, len(meta))
	copy(outMeta, meta)
	r.metaByLeague[leagueKey] = outMeta

	return nil
}
