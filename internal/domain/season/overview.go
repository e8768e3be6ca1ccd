package season

import (
	"errors"
	"math"

	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
)

var ErrNoTeams = errors.New("league-season has no teams")

// Input is one league-season's record sets. Matchups arrive already
// joined with their metadata; grouping and duplicate detection happen
// upstream.
type Input struct {
	Season       string
	LeagueKey    string
	Teams        []team.Team
	Matchups     []Matchup
	Standings    []standings.Row
	Transactions []Transaction
}

// MedianRecord is the alternate-standings summary of the overview.
type MedianRecord struct {
	MedianScore          *float64     `json:"median_score"`
	Leader               *TeamPayload `json:"leader"`
	LeaderMedianWins     *int         `json:"leader_median_wins"`
	BiggestGap           *int         `json:"biggest_gap"`
	BiggestGapTeam       *TeamPayload `json:"biggest_gap_team"`
	BiggestGapMedianWins *int         `json:"biggest_gap_median_wins"`
	BiggestGapActualWins *int         `json:"biggest_gap_actual_wins"`
}

// Bracket wraps the ordered rounds of one elimination bracket.
type Bracket struct {
	Rounds []BracketRound `json:"rounds"`
}

// Overview is the engine's output record for one league-season. Field
// names and nesting are the contract with downstream rendering and
// must not change.
type Overview struct {
	Season             string              `json:"season"`
	LeagueKey          string              `json:"league_key"`
	Snapshot           Snapshot            `json:"snapshot"`
	CompetitiveBalance *CompetitiveBalance `json:"competitive_balance"`
	MedianRecord       MedianRecord        `json:"median_record"`
	UpsetRate          UpsetRate           `json:"upset_rate"`
	PlayoffBubble      PlayoffBubble       `json:"playoff_bubble"`
	ScoringTrend       []ScoringWeek       `json:"scoring_trend"`
	ActivityPulse      ActivityPulse       `json:"activity_pulse"`
	PlayoffBracket     Bracket             `json:"playoff_bracket"`
	ConsolationBracket Bracket             `json:"consolation_bracket"`
	FinalPlacements    []Placement         `json:"final_placements"`
}

// BuildTeamInfo indexes roster display data by team key.
func BuildTeamInfo(teams []team.Team) TeamInfo {
	info := make(TeamInfo, len(teams))
	for _, t := range teams {
		payload := TeamPayload{TeamKey: t.Key}
		if t.Name != "" {
			name := t.Name
			payload.TeamName = &name
		}
		if t.ManagerNames != "" {
			managers := t.ManagerNames
			payload.ManagerNames = &managers
		}
		info[t.Key] = payload
	}

	return info
}

// BuildOverview runs the full derivation for one league-season. Every
// structure it returns is freshly allocated, so passes for different
// leagues can run concurrently.
func BuildOverview(in Input) (Overview, error) {
	info := BuildTeamInfo(in.Teams)

	teamKeys := make([]string, 0, len(in.Teams))
	for _, t := range in.Teams {
		teamKeys = append(teamKeys, t.Key)
	}
	standingsByTeam := make(map[string]standings.Row, len(in.Standings))
	for _, row := range in.Standings {
		standingsByTeam[row.TeamKey] = row
	}
	if len(teamKeys) == 0 {
		for teamKey := range standingsByTeam {
			teamKeys = append(teamKeys, teamKey)
		}
	}
	if len(teamKeys) == 0 {
		return Overview{}, ErrNoTeams
	}

	actualWins := make(map[string]int, len(teamKeys))
	standingsRank := make(map[string]int, len(standingsByTeam))
	for teamKey, row := range standingsByTeam {
		actualWins[teamKey] = row.Wins
		standingsRank[teamKey] = row.Rank
	}

	rs := newRegularSeason(in.Matchups)
	playoffCount := rs.playoffCount(len(teamKeys))
	sim := simulateMedianSeason(rs, teamKeys, actualWins)
	walk := walkRunningSeason(rs, teamKeys, playoffCount)

	playoffRounds := BuildBracket(in.Matchups, info, false)
	consolationRounds := BuildBracket(in.Matchups, info, true)
	playoffPlaces := InferPlacements(playoffRounds, standingsRank)
	consolationPlaces := InferPlacements(consolationRounds, standingsRank)
	finalPlaces := MergePlacements(teamKeys, playoffPlaces, consolationPlaces, standingsRank)

	out := Overview{
		Season:             in.Season,
		LeagueKey:          in.LeagueKey,
		Snapshot:           buildSnapshot(rs),
		CompetitiveBalance: buildCompetitiveBalance(rs),
		MedianRecord:       buildMedianRecord(sim, actualWins, info),
		UpsetRate:          buildUpsetRate(walk),
		PlayoffBubble:      buildPlayoffBubble(rs, standingsByTeam, info, playoffCount, walk),
		ScoringTrend:       buildScoringTrend(rs),
		ActivityPulse:      buildActivityPulse(in.Transactions),
		PlayoffBracket:     Bracket{Rounds: playoffRounds},
		ConsolationBracket: Bracket{Rounds: consolationRounds},
		FinalPlacements:    FinalPlacements(finalPlaces),
	}

	return out, nil
}

func buildMedianRecord(sim MedianSimulation, actualWins map[string]int, info TeamInfo) MedianRecord {
	record := MedianRecord{MedianScore: round2Ptr(sim.OverallMedian)}

	if sim.LeaderKey != "" {
		leader := info.Payload(sim.LeaderKey)
		wins := sim.MedianWins[sim.LeaderKey]
		record.Leader = &leader
		record.LeaderMedianWins = &wins
	}
	if sim.GapTeamKey != "" && sim.GapValue != nil {
		gapTeam := info.Payload(sim.GapTeamKey)
		medianWins := sim.MedianWins[sim.GapTeamKey]
		realWins := actualWins[sim.GapTeamKey]
		record.BiggestGap = sim.GapValue
		record.BiggestGapTeam = &gapTeam
		record.BiggestGapMedianWins = &medianWins
		record.BiggestGapActualWins = &realWins
	}

	return record
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round2Ptr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := round2(*value)

	return &rounded
}
