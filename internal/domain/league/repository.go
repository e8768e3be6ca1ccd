package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByKey(ctx context.Context, leagueKey string) (League, bool, error)
	UpsertBatch(ctx context.Context, leagues []League) error
}
