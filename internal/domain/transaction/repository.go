package transaction

import "context"

// Repository describes transaction persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueKey string) ([]Transaction, error)
	ListParticipantsByLeague(ctx context.Context, leagueKey string) ([]Participant, error)
	ReplaceByLeague(ctx context.Context, leagueKey string, txns []Transaction, participants []Participant) error
}
