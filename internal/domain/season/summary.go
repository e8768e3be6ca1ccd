package season

import "strings"

// waiverTypes are the transaction types that count as waiver churn.
var waiverTypes = map[string]struct{}{
	"add":      {},
	"drop":     {},
	"add/drop": {},
	"waiver":   {},
}

// TeamSummary is one row of the per-team season summary feed: the
// computed regular-season line plus roster-move counts.
type TeamSummary struct {
	Season        string  `json:"season"`
	LeagueKey     string  `json:"league_key"`
	TeamKey       string  `json:"team_key"`
	TeamName      *string `json:"team_name"`
	ManagerNames  *string `json:"manager_names"`
	Rank          int     `json:"rank"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	WaiverMoves   int     `json:"waiver_moves"`
	TotalMoves    int     `json:"total_moves"`
}

// BuildTeamSummaries computes the regular-season ranking and pairs it
// with per-team transaction volume. Rows come back rank-ordered.
func BuildTeamSummaries(in Input) []TeamSummary {
	info := BuildTeamInfo(in.Teams)
	teamKeys := make([]string, 0, len(in.Teams))
	for _, t := range in.Teams {
		teamKeys = append(teamKeys, t.Key)
	}

	records := BuildRegularSeasonRecords(teamKeys, in.Matchups)
	rankByTeam := make(map[string]int, len(records))
	for idx, teamKey := range records.RankTeams() {
		rankByTeam[teamKey] = idx + 1
	}

	waiverMoves := make(map[string]int)
	totalMoves := make(map[string]int)
	for _, txn := range in.Transactions {
		_, isWaiver := waiverTypes[strings.ToLower(txn.Type)]
		for _, teamKey := range txn.TeamKeys {
			totalMoves[teamKey]++
			if isWaiver {
				waiverMoves[teamKey]++
			}
		}
	}

	rows := make([]TeamSummary, 0, len(records))
	for _, teamKey := range records.RankTeams() {
		payload := info.Payload(teamKey)
		record := records[teamKey]
		rows = append(rows, TeamSummary{
			Season:        in.Season,
			LeagueKey:     in.LeagueKey,
			TeamKey:       teamKey,
			TeamName:      payload.TeamName,
			ManagerNames:  payload.ManagerNames,
			Rank:          rankByTeam[teamKey],
			Wins:          record.Wins,
			Losses:        record.Losses,
			Ties:          record.Ties,
			PointsFor:     round2(record.PointsFor),
			PointsAgainst: round2(record.PointsAgainst),
			WaiverMoves:   waiverMoves[teamKey],
			TotalMoves:    totalMoves[teamKey],
		})
	}

	return rows
}
