package season

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/league-insights/internal/domain/standings"
)

// closeMarginThreshold is the margin (in points) at or below which a
// game counts as close.
const closeMarginThreshold = 10.0

// Snapshot aggregates raw scoring totals and margins.
type Snapshot struct {
	TotalPoints     *float64 `json:"total_points"`
	AvgWeeklyPoints *float64 `json:"avg_weekly_points"`
	AvgMargin       *float64 `json:"avg_margin"`
	ClosestMargin   *float64 `json:"closest_margin"`
	BlowoutMargin   *float64 `json:"blowout_margin"`
}

// CompetitiveBalance summarizes how tight the league's games were.
type CompetitiveBalance struct {
	MedianMargin   float64  `json:"median_margin"`
	CloseGames     int      `json:"close_games"`
	CloseGameRate  *float64 `json:"close_game_rate"`
	CloseThreshold float64  `json:"close_threshold"`
}

// UpsetRate counts decisive games won by the side with the lower
// running win percentage.
type UpsetRate struct {
	Upsets int      `json:"upsets"`
	Games  int      `json:"games"`
	Rate   *float64 `json:"rate"`
}

// SeedLine is a bubble-boundary team with its persisted rank.
type SeedLine struct {
	TeamPayload
	Rank      *int    `json:"rank"`
	PointsFor float64 `json:"points_for"`
}

// WeeksInSpot counts the weeks a team held a playoff position in the
// point-in-time standings.
type WeeksInSpot struct {
	TeamPayload
	Weeks int `json:"weeks"`
}

// PlayoffBubble describes the qualification boundary.
type PlayoffBubble struct {
	PlayoffTeams int           `json:"playoff_teams"`
	PointsGap    *float64      `json:"points_gap"`
	LastSeed     *SeedLine     `json:"last_seed"`
	FirstOut     *SeedLine     `json:"first_out"`
	WeeksInSpot  []WeeksInSpot `json:"weeks_in_spot"`
}

// ScoringWeek is one point of the weekly scoring trend.
type ScoringWeek struct {
	Week      int     `json:"week"`
	AvgPoints float64 `json:"avg_points"`
}

// ActivityPulse summarizes roster-move volume.
type ActivityPulse struct {
	TotalTransactions   int     `json:"total_transactions"`
	TotalTrades         int     `json:"total_trades"`
	BusiestWeek         *string `json:"busiest_week"`
	BusiestTransactions *int    `json:"busiest_transactions"`
	BusiestTeams        *int    `json:"busiest_teams"`
}

// Transaction is the engine's view of one roster move with the teams
// it touched.
type Transaction struct {
	Key       string
	Type      string
	Timestamp int64
	TeamKeys  []string
}

func buildSnapshot(rs *regularSeason) Snapshot {
	var snap Snapshot
	if rs.entryCount > 0 {
		total := round2(rs.totalPoints)
		avg := round2(rs.totalPoints / float64(rs.entryCount))
		snap.TotalPoints = &total
		snap.AvgWeeklyPoints = &avg
	}
	if len(rs.margins) > 0 {
		snap.AvgMargin = round2Ptr(mean(rs.margins))
		closest, blowout := rs.margins[0], rs.margins[0]
		for _, margin := range rs.margins[1:] {
			if margin < closest {
				closest = margin
			}
			if margin > blowout {
				blowout = margin
			}
		}
		closest, blowout = round2(closest), round2(blowout)
		snap.ClosestMargin = &closest
		snap.BlowoutMargin = &blowout
	}

	return snap
}

func buildCompetitiveBalance(rs *regularSeason) *CompetitiveBalance {
	if len(rs.margins) == 0 {
		return nil
	}

	close := 0
	for _, margin := range rs.margins {
		if margin <= closeMarginThreshold {
			close++
		}
	}
	rate := float64(close) / float64(len(rs.margins))

	return &CompetitiveBalance{
		MedianMargin:   round2(median(rs.margins)),
		CloseGames:     close,
		CloseGameRate:  &rate,
		CloseThreshold: closeMarginThreshold,
	}
}

// seasonWalk is the incremental week-by-week pass shared by the upset
// counter and the playoff-spot tracker. Win probabilities for a week
// reflect only the weeks before it.
type seasonWalk struct {
	upsets      int
	games       int
	weeksInSpot map[string]int
}

func walkRunningSeason(rs *regularSeason, teamKeys []string, playoffCount int) seasonWalk {
	walk := seasonWalk{weeksInSpot: make(map[string]int)}
	records := NewRecordSet(teamKeys)
	pointsToDate := make(map[string]float64, len(teamKeys))

	ordered := make([]string, len(teamKeys))
	copy(ordered, teamKeys)
	sort.Strings(ordered)

	for _, week := range rs.weeks {
		for _, m := range rs.matchupsByWeek[week] {
			out, ok := ResolveMatchup(m.Sides)
			if !ok || out.Tie {
				continue
			}
			walk.games++
			winnerPct := records.get(out.Winner).WinPct()
			loserPct := records.get(out.Loser).WinPct()
			if winnerPct < loserPct {
				walk.upsets++
			}
		}

		for _, m := range rs.matchupsByWeek[week] {
			if out, ok := ResolveMatchup(m.Sides); ok {
				records.ApplyOutcome(out, m.Sides)
			}
		}
		for _, item := range rs.pointsByWeek[week] {
			pointsToDate[item.TeamKey] += item.Points
		}

		snapshot := make([]string, len(ordered))
		copy(snapshot, ordered)
		sort.SliceStable(snapshot, func(i, j int) bool {
			pi, pj := records.get(snapshot[i]).WinPct(), records.get(snapshot[j]).WinPct()
			if pi != pj {
				return pi > pj
			}
			return pointsToDate[snapshot[i]] > pointsToDate[snapshot[j]]
		})
		for i := 0; i < len(snapshot) && i < playoffCount; i++ {
			walk.weeksInSpot[snapshot[i]]++
		}
	}

	return walk
}

func buildUpsetRate(walk seasonWalk) UpsetRate {
	rate := UpsetRate{Upsets: walk.upsets, Games: walk.games}
	if walk.games > 0 {
		value := float64(walk.upsets) / float64(walk.games)
		rate.Rate = &value
	}

	return rate
}

func buildPlayoffBubble(rs *regularSeason, rows map[string]standings.Row, info TeamInfo, playoffCount int, walk seasonWalk) PlayoffBubble {
	bubble := PlayoffBubble{PlayoffTeams: playoffCount}

	if len(rows) > 0 {
		var playoffRows, otherRows []standings.Row
		if len(rs.playoffTeams) > 0 {
			for teamKey, row := range rows {
				if _, ok := rs.playoffTeams[teamKey]; ok {
					playoffRows = append(playoffRows, row)
				} else {
					otherRows = append(otherRows, row)
				}
			}
		} else {
			all := make([]standings.Row, 0, len(rows))
			for _, row := range rows {
				all = append(all, row)
			}
			sort.SliceStable(all, func(i, j int) bool {
				ri, rj := rankOrSentinel(all[i].Rank), rankOrSentinel(all[j].Rank)
				if ri != rj {
					return ri < rj
				}
				return all[i].TeamKey < all[j].TeamKey
			})
			if playoffCount < len(all) {
				playoffRows, otherRows = all[:playoffCount], all[playoffCount:]
			} else {
				playoffRows = all
			}
		}

		lastSeed := pickSeed(playoffRows, info, true)
		firstOut := pickSeed(otherRows, info, false)
		bubble.LastSeed = lastSeed
		bubble.FirstOut = firstOut
		if lastSeed != nil && firstOut != nil {
			gap := round2(lastSeed.PointsFor - firstOut.PointsFor)
			bubble.PointsGap = &gap
		}
	}

	spotTeams := make([]string, 0, len(walk.weeksInSpot))
	for teamKey := range walk.weeksInSpot {
		spotTeams = append(spotTeams, teamKey)
	}
	sort.SliceStable(spotTeams, func(i, j int) bool {
		if walk.weeksInSpot[spotTeams[i]] != walk.weeksInSpot[spotTeams[j]] {
			return walk.weeksInSpot[spotTeams[i]] > walk.weeksInSpot[spotTeams[j]]
		}
		return spotTeams[i] < spotTeams[j]
	})
	bubble.WeeksInSpot = make([]WeeksInSpot, 0, len(spotTeams))
	for _, teamKey := range spotTeams {
		bubble.WeeksInSpot = append(bubble.WeeksInSpot, WeeksInSpot{
			TeamPayload: info.Payload(teamKey),
			Weeks:       walk.weeksInSpot[teamKey],
		})
	}

	return bubble
}

// pickSeed selects the worst-ranked row (the last qualifying seed)
// or the best-ranked one (the first team out). Ties keep the smaller
// team key.
func pickSeed(rows []standings.Row, info TeamInfo, worst bool) *SeedLine {
	if len(rows) == 0 {
		return nil
	}

	sorted := make([]standings.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TeamKey < sorted[j].TeamKey
	})

	pick := sorted[0]
	for _, row := range sorted[1:] {
		if worst {
			if row.Rank > pick.Rank {
				pick = row
			}
		} else {
			if rankOrSentinel(row.Rank) < rankOrSentinel(pick.Rank) {
				pick = row
			}
		}
	}

	line := &SeedLine{
		TeamPayload: info.Payload(pick.TeamKey),
		PointsFor:   round2(pick.PointsFor),
	}
	if pick.Rank > 0 {
		rank := pick.Rank
		line.Rank = &rank
	}

	return line
}

func rankOrSentinel(rank int) int {
	if rank <= 0 {
		return unrankedSentinel
	}

	return rank
}

func buildScoringTrend(rs *regularSeason) []ScoringWeek {
	weeks := make([]int, 0, len(rs.pointsByWeek))
	for week := range rs.pointsByWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	trend := make([]ScoringWeek, 0, len(weeks))
	for _, week := range weeks {
		items := rs.pointsByWeek[week]
		if len(items) == 0 {
			continue
		}
		var sum float64
		for _, item := range items {
			sum += item.Points
		}
		trend = append(trend, ScoringWeek{
			Week:      week,
			AvgPoints: round2(sum / float64(len(items))),
		})
	}

	return trend
}

func buildActivityPulse(txns []Transaction) ActivityPulse {
	pulse := ActivityPulse{TotalTransactions: len(txns)}

	weekTxns := make(map[string]int)
	weekTeams := make(map[string]map[string]struct{})
	for _, txn := range txns {
		if strings.ToLower(txn.Type) == "trade" {
			pulse.TotalTrades++
		}
		if txn.Timestamp <= 0 {
			continue
		}
		year, week := time.Unix(txn.Timestamp, 0).UTC().ISOWeek()
		label := fmt.Sprintf("%d-W%02d", year, week)
		weekTxns[label]++
		teams, ok := weekTeams[label]
		if !ok {
			teams = make(map[string]struct{})
			weekTeams[label] = teams
		}
		for _, teamKey := range txn.TeamKeys {
			teams[teamKey] = struct{}{}
		}
	}

	labels := make([]string, 0, len(weekTxns))
	for label := range weekTxns {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	busiest := ""
	busiestCount := 0
	for _, label := range labels {
		if weekTxns[label] > busiestCount {
			busiestCount = weekTxns[label]
			busiest = label
		}
	}
	if busiest != "" {
		teams := len(weekTeams[busiest])
		pulse.BusiestWeek = &busiest
		pulse.BusiestTransactions = &busiestCount
		if teams > 0 {
			pulse.BusiestTeams = &teams
		}
	}

	return pulse
}
