package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-insights/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.Key] = l
		orders = append(orders, l.Key)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, key := range r.orders {
		out = append(out, r.items[key])
	}

	return out, nil
}

func (r *LeagueRepository) GetByKey(_ context.Context, leagueKey string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueKey]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) UpsertBatch(_ context.Context, leagues []league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range leagues {
		if l.Key == "" {
			continue
		}
		if _, exists := r.items[l.Key]; !exists {
			r.orders = append(r.orders, l.Key)
		}
		r.items[l.Key] = l
	}

	return nil
}
