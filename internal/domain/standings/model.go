package standings

import "fmt"

// Row is the persisted, upstream-authoritative standings line for one
// team. Rank 0 means the upstream feed never assigned one.
type Row struct {
	LeagueKey     string
	TeamKey       string
	Rank          int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
}

func (r Row) Validate() error {
	if r.LeagueKey == "" {
		return fmt.Errorf("standings row league key is required")
	}
	if r.TeamKey == "" {
		return fmt.Errorf("standings row team key is required")
	}
	if r.Rank < 0 {
		return fmt.Errorf("standings row rank must not be negative")
	}

	return nil
}
