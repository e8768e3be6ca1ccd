package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueKey string) ([]Team, error)
	GetByKey(ctx context.Context, leagueKey, teamKey string) (Team, bool, error)
	ReplaceByLeague(ctx context.Context, leagueKey string, teams []Team) error
}
