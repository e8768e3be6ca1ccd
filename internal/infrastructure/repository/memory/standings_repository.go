package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-insights/internal/domain/standings"
)

type StandingsRepository struct {
	mu           sync.RWMutex
	rowsByLeague map[string][]standings.Row
}

func NewStandingsRepository(rows []standings.Row) *StandingsRepository {
	rowsByLeague := make(map[string][]standings.Row)
	for _, item := range rows {
		rowsByLeague[item.LeagueKey] = append(rowsByLeague[item.LeagueKey], item)
	}

	return &StandingsRepository{rowsByLeague: rowsByLeague}
}

func (r *StandingsRepository) ListByLeague(_ context.Context, leagueKey string) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rowsByLeague[leagueKey]
	out := make([]standings.Row, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *StandingsRepository) ReplaceByLeague(_ context.Context, leagueKey string, rows []standings.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]standings.Row, len(rows))
	copy(out, rows)
	r.rowsByLeague[leagueKey] = out

	return nil
}
