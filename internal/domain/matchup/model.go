package matchup

import "fmt"

// Entry is one team's side of a weekly head-to-head matchup.
// Points stays nil when the upstream sync has no score recorded.
type Entry struct {
	LeagueKey       string
	Week            int
	MatchupID       int
	TeamKey         string
	Points          *float64
	ProjectedPoints *float64
	WinStatus       string
}

func (e Entry) Validate() error {
	if e.LeagueKey == "" {
		return fmt.Errorf("matchup entry league key is required")
	}
	if e.Week <= 0 {
		return fmt.Errorf("matchup entry week must be positive")
	}
	if e.TeamKey == "" {
		return fmt.Errorf("matchup entry team key is required")
	}

	return nil
}

// Meta carries matchup-level attributes that arrive separately from
// the per-team rows. At most one row exists per (league, week, matchup id).
type Meta struct {
	LeagueKey     string
	Week          int
	MatchupID     int
	IsPlayoffs    bool
	IsConsolation bool
	WinnerTeamKey string
}

func (m Meta) Validate() error {
	if m.LeagueKey == "" {
		return fmt.Errorf("matchup meta league key is required")
	}
	if m.Week <= 0 {
		return fmt.Errorf("matchup meta week must be positive")
	}

	return nil
}
