package season

import "sort"

// TeamPayload is the display identity embedded in output records.
// Name fields stay nil for teams missing from the roster.
type TeamPayload struct {
	TeamKey      string  `json:"team_key"`
	TeamName     *string `json:"team_name"`
	ManagerNames *string `json:"manager_names"`
}

// TeamInfo resolves a team key to its display payload.
type TeamInfo map[string]TeamPayload

// Payload returns the display payload for a team, with nil name
// fields when the roster never listed it.
func (ti TeamInfo) Payload(teamKey string) TeamPayload {
	if payload, ok := ti[teamKey]; ok {
		return payload
	}

	return TeamPayload{TeamKey: teamKey}
}

// BracketSide is one team's line inside a bracket matchup.
type BracketSide struct {
	TeamKey  string      `json:"team_key"`
	Team     TeamPayload `json:"team"`
	Points   *float64    `json:"points"`
	IsWinner bool        `json:"is_winner"`
}

// BracketMatchup is one resolved (or explicitly unresolved) bracket
// pairing. Winner and loser stay nil when no signal resolves the
// game; the matchup is still listed.
type BracketMatchup struct {
	MatchupID     int           `json:"matchup_id"`
	WinnerTeamKey *string       `json:"winner_team_key"`
	LoserTeamKey  *string       `json:"loser_team_key"`
	Teams         []BracketSide `json:"teams"`
}

// BracketRound is all bracket matchups of a single week.
type BracketRound struct {
	Week     int              `json:"week"`
	Matchups []BracketMatchup `json:"matchups"`
}

// BuildBracket groups playoff matchups into week-ordered rounds.
// consolation selects the consolation bracket instead of the title
// bracket. The winner is the upstream declared winner when present,
// otherwise the result resolver's pick; ties resolve nobody.
func BuildBracket(matchups []Matchup, info TeamInfo, consolation bool) []BracketRound {
	byWeek := make(map[int][]BracketMatchup)
	for _, m := range matchups {
		if !m.IsPlayoffs || m.IsConsolation != consolation || !m.IsTwoTeam() {
			continue
		}

		winnerKey := m.DeclaredWinner
		if winnerKey == "" {
			if out, ok := ResolveMatchup(m.Sides); ok && !out.Tie {
				winnerKey = out.Winner
			}
		}

		entry := BracketMatchup{MatchupID: m.MatchupID}
		if winnerKey != "" {
			entry.WinnerTeamKey = &winnerKey
			for _, side := range m.Sides {
				if side.TeamKey != winnerKey {
					loserKey := side.TeamKey
					entry.LoserTeamKey = &loserKey
					break
				}
			}
		}

		for _, side := range m.Sides {
			entry.Teams = append(entry.Teams, BracketSide{
				TeamKey:  side.TeamKey,
				Team:     info.Payload(side.TeamKey),
				Points:   round2Ptr(side.Points),
				IsWinner: side.TeamKey == winnerKey && winnerKey != "",
			})
		}
		if winnerKey != "" {
			sort.SliceStable(entry.Teams, func(i, j int) bool {
				return entry.Teams[i].IsWinner && !entry.Teams[j].IsWinner
			})
		}

		byWeek[m.Week] = append(byWeek[m.Week], entry)
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	rounds := make([]BracketRound, 0, len(weeks))
	for _, week := range weeks {
		entries := byWeek[week]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].MatchupID < entries[j].MatchupID
		})
		rounds = append(rounds, BracketRound{Week: week, Matchups: entries})
	}

	return rounds
}
