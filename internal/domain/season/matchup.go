package season

// Matchup is one week's pairing joined with its bracket metadata.
// DeclaredWinner is the upstream winner announcement when one exists.
type Matchup struct {
	Week           int
	MatchupID      int
	IsPlayoffs     bool
	IsConsolation  bool
	DeclaredWinner string
	Sides          []Side
}

// IsRegularSeason reports whether the matchup counts toward the
// regular-season record. Consolation games run during playoff weeks
// and are kept out of regular-season aggregates.
func (m Matchup) IsRegularSeason() bool {
	return !m.IsPlayoffs
}

// IsTwoTeam reports whether the matchup pairs exactly two sides.
// Anything else (byes, malformed sync rows) is excluded from analysis.
func (m Matchup) IsTwoTeam() bool {
	return len(m.Sides) == 2
}
