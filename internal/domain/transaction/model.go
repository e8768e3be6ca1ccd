package transaction

import "fmt"

// Transaction is one roster move event (trade, add, drop, waiver
// claim) recorded against a league-season.
type Transaction struct {
	Key       string
	LeagueKey string
	Type      string
	Timestamp int64
}

func (t Transaction) Validate() error {
	if t.Key == "" {
		return fmt.Errorf("transaction key is required")
	}
	if t.LeagueKey == "" {
		return fmt.Errorf("transaction league key is required")
	}

	return nil
}

// Participant links a transaction to the teams a player moved between.
// Either side may be empty (free-agent pickups and drops).
type Participant struct {
	TransactionKey     string
	PlayerKey          string
	Type               string
	SourceTeamKey      string
	DestinationTeamKey string
}

func (p Participant) Validate() error {
	if p.TransactionKey == "" {
		return fmt.Errorf("transaction participant key is required")
	}

	return nil
}
