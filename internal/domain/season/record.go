package season

import "sort"

// Record is a team's accumulated win/loss line. One Record belongs to
// exactly one team within one analysis pass; it is never shared.
type Record struct {
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
}

// Games is the number of decisive-or-tied games played.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct is (wins + 0.5*ties) / games, 0 when no games were played.
func (r Record) WinPct() float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}

	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(games)
}

// RecordSet accumulates per-team records keyed by team key.
type RecordSet map[string]*Record

// NewRecordSet seeds a zero record for every roster team so teams with
// no played matchups still rank.
func NewRecordSet(teamKeys []string) RecordSet {
	set := make(RecordSet, len(teamKeys))
	for _, key := range teamKeys {
		set[key] = &Record{}
	}

	return set
}

func (s RecordSet) get(teamKey string) *Record {
	rec, ok := s[teamKey]
	if !ok {
		rec = &Record{}
		s[teamKey] = rec
	}

	return rec
}

// ApplyOutcome increments win/loss/tie counters for a resolved
// matchup between the two sides.
func (s RecordSet) ApplyOutcome(out Outcome, sides []Side) {
	if out.Tie {
		for _, side := range sides {
			s.get(side.TeamKey).Ties++
		}
		return
	}
	s.get(out.Winner).Wins++
	s.get(out.Loser).Losses++
}

// ApplyPoints accumulates points for/against symmetrically for a
// two-sided matchup with both scores present.
func (s RecordSet) ApplyPoints(a, b Side) {
	if a.Points == nil || b.Points == nil {
		return
	}
	recA := s.get(a.TeamKey)
	recB := s.get(b.TeamKey)
	recA.PointsFor += *a.Points
	recA.PointsAgainst += *b.Points
	recB.PointsFor += *b.Points
	recB.PointsAgainst += *a.Points
}

// BuildRegularSeasonRecords accumulates every two-team regular-season
// matchup with both scores present into per-team records.
func BuildRegularSeasonRecords(teamKeys []string, matchups []Matchup) RecordSet {
	set := NewRecordSet(teamKeys)
	for _, m := range matchups {
		if !m.IsRegularSeason() || !m.IsTwoTeam() {
			continue
		}
		a, b := m.Sides[0], m.Sides[1]
		if a.Points == nil || b.Points == nil {
			continue
		}
		set.ApplyPoints(a, b)
		if out, ok := ResolveOutcome(a, b); ok {
			set.ApplyOutcome(out, m.Sides)
		}
	}

	return set
}

// CompareRecords orders two records best-first. Criteria, in order:
// higher win percentage, higher points for, lower points against.
// Returns <0 when a ranks ahead of b.
func CompareRecords(a, b Record) int {
	switch {
	case a.WinPct() > b.WinPct():
		return -1
	case a.WinPct() < b.WinPct():
		return 1
	}
	switch {
	case a.PointsFor > b.PointsFor:
		return -1
	case a.PointsFor < b.PointsFor:
		return 1
	}
	switch {
	case a.PointsAgainst < b.PointsAgainst:
		return -1
	case a.PointsAgainst > b.PointsAgainst:
		return 1
	}

	return 0
}

// RankTeams returns team keys ordered best-first by CompareRecords,
// with the team key itself as the final tie-break so equal records
// always order the same way.
func (s RecordSet) RankTeams() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if cmp := CompareRecords(*s[keys[i]], *s[keys[j]]); cmp != 0 {
			return cmp < 0
		}
		return keys[i] < keys[j]
	})

	return keys
}
