package matchup

import "context"

// Repository describes matchup persistence needs from use cases.
type Repository interface {
	ListEntriesByLeague(ctx context.Context, leagueKey string) ([]Entry, error)
	ListMetaByLeague(ctx context.Context, leagueKey string) ([]Meta, error)
	ReplaceByLeague(ctx context.Context, leagueKey string, entries []Entry, meta []Meta) error
}
