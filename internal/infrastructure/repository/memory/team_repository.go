package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-insights/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsByLeague map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByLeague := make(map[string][]team.Team)
	for _, item := range teams {
		teamsByLeague[item.LeagueKey] = append(teamsByLeague[item.LeagueKey], item)
	}

	return &TeamRepository{teamsByLeague: teamsByLeague}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueKey string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByLeague[leagueKey]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) GetByKey(_ context.Context, leagueKey, teamKey string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teamsByLeague[leagueKey] {
		if item.Key == teamKey {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) ReplaceByLeague(_ context.Context, leagueKey string, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]team.Team, len(teams))
	copy(out, teams)
	r.teamsByLeague[leagueKey] = out

	return nil
}
