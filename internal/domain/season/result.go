package season

import "strings"

// Side is one team's entry in a head-to-head matchup. Points is nil
// when no score was recorded for that week.
type Side struct {
	TeamKey   string
	Points    *float64
	WinStatus string
}

// Outcome is a resolved matchup result. Winner and Loser are empty on
// a tie.
type Outcome struct {
	Tie    bool
	Winner string
	Loser  string
}

const (
	statusWin = "win"
	statusTie = "tie"
)

// ResolveOutcome determines winner/loser/tie from a priority chain of
// signals. Declared status wins over raw points because upstream
// tiebreak rules (bench points, head-to-head history) are not
// reproducible from the point totals alone:
//
//  1. either side carries a "tie" status -> tie
//  2. exactly one side carries a "win" status -> that side wins
//  3. both point totals present -> higher total wins, equal -> tie
//
// ok is false when none of the rules apply; such a matchup is excluded
// from every computation that needs a winner.
func ResolveOutcome(a, b Side) (Outcome, bool) {
	statusA := strings.ToLower(strings.TrimSpace(a.WinStatus))
	statusB := strings.ToLower(strings.TrimSpace(b.WinStatus))

	if statusA == statusTie || statusB == statusTie {
		return Outcome{Tie: true}, true
	}
	if statusA == statusWin && statusB != statusWin {
		return Outcome{Winner: a.TeamKey, Loser: b.TeamKey}, true
	}
	if statusB == statusWin && statusA != statusWin {
		return Outcome{Winner: b.TeamKey, Loser: a.TeamKey}, true
	}

	if a.Points == nil || b.Points == nil {
		return Outcome{}, false
	}
	switch {
	case *a.Points == *b.Points:
		return Outcome{Tie: true}, true
	case *a.Points > *b.Points:
		return Outcome{Winner: a.TeamKey, Loser: b.TeamKey}, true
	default:
		return Outcome{Winner: b.TeamKey, Loser: a.TeamKey}, true
	}
}

// ResolveMatchup resolves a full matchup. Matchups that do not pair
// exactly two sides are never resolvable.
func ResolveMatchup(sides []Side) (Outcome, bool) {
	if len(sides) != 2 {
		return Outcome{}, false
	}

	return ResolveOutcome(sides[0], sides[1])
}
