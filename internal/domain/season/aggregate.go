package season

import "sort"

// TeamPoints pairs a team with its recorded score for one week.
type TeamPoints struct {
	TeamKey string
	Points  float64
}

// regularSeason holds the week-indexed views every downstream
// computation shares for one league-season. Only two-team matchups
// contribute; regular season means the matchup is not flagged as a
// playoff game (consolation games run in playoff weeks and are kept
// out as well).
type regularSeason struct {
	weeks          []int
	pointsByWeek   map[int][]TeamPoints
	matchupsByWeek map[int][]Matchup
	pointsByTeam   map[string]float64
	allPoints      []float64
	margins        []float64
	totalPoints    float64
	entryCount     int
	playoffTeams   map[string]struct{}
}

func newRegularSeason(matchups []Matchup) *regularSeason {
	ordered := make([]Matchup, len(matchups))
	copy(ordered, matchups)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Week != ordered[j].Week {
			return ordered[i].Week < ordered[j].Week
		}
		return ordered[i].MatchupID < ordered[j].MatchupID
	})

	rs := &regularSeason{
		pointsByWeek:   make(map[int][]TeamPoints),
		matchupsByWeek: make(map[int][]Matchup),
		pointsByTeam:   make(map[string]float64),
		playoffTeams:   make(map[string]struct{}),
	}

	for _, m := range ordered {
		if !m.IsTwoTeam() {
			continue
		}
		if m.IsPlayoffs {
			if !m.IsConsolation {
				for _, side := range m.Sides {
					rs.playoffTeams[side.TeamKey] = struct{}{}
				}
			}
			continue
		}

		rs.matchupsByWeek[m.Week] = append(rs.matchupsByWeek[m.Week], m)
		for _, side := range m.Sides {
			if side.Points == nil {
				continue
			}
			rs.pointsByWeek[m.Week] = append(rs.pointsByWeek[m.Week], TeamPoints{
				TeamKey: side.TeamKey,
				Points:  *side.Points,
			})
			rs.pointsByTeam[side.TeamKey] += *side.Points
			rs.totalPoints += *side.Points
			rs.entryCount++
			rs.allPoints = append(rs.allPoints, *side.Points)
		}
		if a, b := m.Sides[0], m.Sides[1]; a.Points != nil && b.Points != nil {
			margin := *a.Points - *b.Points
			if margin < 0 {
				margin = -margin
			}
			rs.margins = append(rs.margins, margin)
		}
	}

	for week := range rs.matchupsByWeek {
		rs.weeks = append(rs.weeks, week)
	}
	sort.Ints(rs.weeks)

	return rs
}

// playoffCount is the observed playoff field size, or max(4, n/2)
// when no playoff matchup was ever recorded.
func (rs *regularSeason) playoffCount(teamCount int) int {
	if n := len(rs.playoffTeams); n > 0 {
		return n
	}
	half := teamCount / 2
	if half < 4 {
		return 4
	}

	return half
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	return &avg
}
