package standings

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueKey string) ([]Row, error)
	ReplaceByLeague(ctx context.Context, leagueKey string, rows []Row) error
}
