package season

import (
	"fmt"
	"sort"
)

// unrankedSentinel sorts teams without a persisted standings rank
// behind every ranked team.
const unrankedSentinel = 999

// Placement is one line of the final league ranking.
type Placement struct {
	TeamKey    string `json:"team_key"`
	FinalPlace int    `json:"final_place"`
	FinalLabel string `json:"final_label"`
}

// InferPlacements assigns ranks within one bracket. Only the final
// round and the round immediately preceding it carry structural
// meaning: a final-round matchup between the preceding round's
// winners is the championship, one between its losers the third-place
// game. Everything the structure cannot explain falls back to the
// persisted standings rank.
func InferPlacements(rounds []BracketRound, standingsRank map[string]int) map[string]int {
	placements := make(map[string]int)
	if len(rounds) == 0 {
		return placements
	}

	finalRound := rounds[len(rounds)-1]
	prevWinners := make(map[string]struct{})
	prevLosers := make(map[string]struct{})
	if len(rounds) > 1 {
		for _, m := range rounds[len(rounds)-2].Matchups {
			if m.WinnerTeamKey != nil {
				prevWinners[*m.WinnerTeamKey] = struct{}{}
			}
			if m.LoserTeamKey != nil {
				prevLosers[*m.LoserTeamKey] = struct{}{}
			}
		}
	}

	assign := func(teamKey *string, place int) {
		if teamKey == nil || *teamKey == "" {
			return
		}
		if _, taken := placements[*teamKey]; taken {
			return
		}
		placements[*teamKey] = place
	}

	var champMatch, thirdMatch *BracketMatchup
	if len(prevWinners) > 0 {
		for i := range finalRound.Matchups {
			m := &finalRound.Matchups[i]
			switch {
			case subsetOf(m.Teams, prevWinners):
				champMatch = m
			case len(prevLosers) > 0 && subsetOf(m.Teams, prevLosers):
				thirdMatch = m
			}
		}
	}
	if champMatch == nil && len(finalRound.Matchups) == 1 {
		champMatch = &finalRound.Matchups[0]
	}

	if champMatch != nil {
		assign(champMatch.WinnerTeamKey, 1)
		assign(champMatch.LoserTeamKey, 2)
	}
	if thirdMatch != nil {
		assign(thirdMatch.WinnerTeamKey, 3)
		assign(thirdMatch.LoserTeamKey, 4)
	}

	nextPlace := maxPlace(placements) + 1
	for _, m := range finalRound.Matchups {
		for _, side := range m.Teams {
			if _, taken := placements[side.TeamKey]; !taken {
				placements[side.TeamKey] = nextPlace
				nextPlace++
			}
		}
	}

	seen := make(map[string]struct{})
	remaining := make([]string, 0)
	for _, round := range rounds {
		for _, m := range round.Matchups {
			for _, side := range m.Teams {
				if _, dup := seen[side.TeamKey]; dup {
					continue
				}
				seen[side.TeamKey] = struct{}{}
				if _, taken := placements[side.TeamKey]; !taken {
					remaining = append(remaining, side.TeamKey)
				}
			}
		}
	}
	sortByStandingsRank(remaining, standingsRank)
	for _, teamKey := range remaining {
		placements[teamKey] = nextPlace
		nextPlace++
	}

	return placements
}

func subsetOf(sides []BracketSide, set map[string]struct{}) bool {
	if len(sides) == 0 {
		return false
	}
	for _, side := range sides {
		if _, ok := set[side.TeamKey]; !ok {
			return false
		}
	}

	return true
}

func maxPlace(placements map[string]int) int {
	max := 0
	for _, place := range placements {
		if place > max {
			max = place
		}
	}

	return max
}

func sortByStandingsRank(teamKeys []string, standingsRank map[string]int) {
	rank := func(teamKey string) int {
		if r, ok := standingsRank[teamKey]; ok && r > 0 {
			return r
		}
		return unrankedSentinel
	}
	sort.SliceStable(teamKeys, func(i, j int) bool {
		ri, rj := rank(teamKeys[i]), rank(teamKeys[j])
		if ri != rj {
			return ri < rj
		}
		return teamKeys[i] < teamKeys[j]
	})
}

// MergePlacements folds the consolation placements in after the
// playoff ones and appends every roster team with no bracket
// appearance, ordered by persisted rank.
func MergePlacements(teamKeys []string, playoff, consolation map[string]int, standingsRank map[string]int) map[string]int {
	final := make(map[string]int, len(teamKeys))
	for teamKey, place := range playoff {
		final[teamKey] = place
	}

	nextPlace := maxPlace(final) + 1
	for teamKey, place := range consolation {
		final[teamKey] = nextPlace + place - 1
	}
	if len(consolation) > 0 {
		nextPlace = maxPlace(final) + 1
	}

	remaining := make([]string, 0)
	for _, teamKey := range teamKeys {
		if _, taken := final[teamKey]; !taken {
			remaining = append(remaining, teamKey)
		}
	}
	sortByStandingsRank(remaining, standingsRank)
	for _, teamKey := range remaining {
		final[teamKey] = nextPlace
		nextPlace++
	}

	return final
}

// FinalPlacements renders the merged placement map as an ordered list
// with ordinal labels.
func FinalPlacements(placements map[string]int) []Placement {
	out := make([]Placement, 0, len(placements))
	for teamKey, place := range placements {
		out = append(out, Placement{
			TeamKey:    teamKey,
			FinalPlace: place,
			FinalLabel: Ordinal(place),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalPlace != out[j].FinalPlace {
			return out[i].FinalPlace < out[j].FinalPlace
		}
		return out[i].TeamKey < out[j].TeamKey
	})

	return out
}

// Ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th" and so on.
func Ordinal(value int) string {
	suffix := "th"
	if value%100 < 10 || value%100 > 20 {
		switch value % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", value, suffix)
}
