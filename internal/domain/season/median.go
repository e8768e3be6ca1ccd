package season

import "sort"

// MedianSimulation is the outcome of re-scoring the season against
// each week's median instead of the head-to-head opponent.
type MedianSimulation struct {
	// OverallMedian is the median of every recorded weekly score, nil
	// when no score exists.
	OverallMedian *float64
	// MedianWins counts, per team, the weeks scored at or above the
	// weekly median.
	MedianWins map[string]int
	// LeaderKey is the team with the most median wins, ties broken by
	// higher total points then smaller team key. Empty when no week
	// was scored.
	LeaderKey string
	// GapTeamKey is the team with the largest median-minus-actual win
	// gap, same tie-break chain. GapValue may be negative.
	GapTeamKey string
	GapValue   *int
}

// SimulateMedianSeason walks the scored regular-season weeks and
// credits one median win per team per week scoring at or above that
// week's median. actualWins comes from the persisted standings, 0 for
// teams without a row.
func simulateMedianSeason(rs *regularSeason, teamKeys []string, actualWins map[string]int) MedianSimulation {
	sim := MedianSimulation{
		MedianWins: make(map[string]int, len(teamKeys)),
	}

	if len(rs.allPoints) > 0 {
		overall := median(rs.allPoints)
		sim.OverallMedian = &overall
	}

	scoredWeeks := make([]int, 0, len(rs.pointsByWeek))
	for week := range rs.pointsByWeek {
		scoredWeeks = append(scoredWeeks, week)
	}
	sort.Ints(scoredWeeks)

	anyScored := false
	for _, week := range scoredWeeks {
		items := rs.pointsByWeek[week]
		if len(items) == 0 {
			continue
		}
		anyScored = true
		points := make([]float64, 0, len(items))
		for _, item := range items {
			points = append(points, item.Points)
		}
		weekMedian := median(points)
		for _, item := range items {
			if item.Points >= weekMedian {
				sim.MedianWins[item.TeamKey]++
			}
		}
	}

	if !anyScored {
		return sim
	}

	ordered := make([]string, len(teamKeys))
	copy(ordered, teamKeys)
	sort.Strings(ordered)

	better := func(candidate, current string, candidateScore, currentScore int) bool {
		if candidateScore != currentScore {
			return candidateScore > currentScore
		}
		if rs.pointsByTeam[candidate] != rs.pointsByTeam[current] {
			return rs.pointsByTeam[candidate] > rs.pointsByTeam[current]
		}
		return false // ordered iteration keeps the smaller team key
	}

	for _, key := range ordered {
		if sim.LeaderKey == "" || better(key, sim.LeaderKey, sim.MedianWins[key], sim.MedianWins[sim.LeaderKey]) {
			sim.LeaderKey = key
		}
		gap := sim.MedianWins[key] - actualWins[key]
		if sim.GapValue == nil || better(key, sim.GapTeamKey, gap, *sim.GapValue) {
			value := gap
			sim.GapValue = &value
			sim.GapTeamKey = key
		}
	}

	return sim
}
