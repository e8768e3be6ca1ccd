package memory

import (
	"fmt"

	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
)

// LeagueKeyDemo2024 is the dev-mode sample league used when the
// service runs without a database.
const LeagueKeyDemo2024 = "449.l.100100"

func SeedLeagues() []league.League {
	return []league.League{
		{
			Key:      LeagueKeyDemo2024,
			Name:     "Backyard Gridiron League",
			Season:   "2024",
			GameCode: "nfl",
			NumTeams: 6,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{Key: teamKey(1), LeagueKey: LeagueKeyDemo2024, Name: "Mud Dogs", ManagerNames: "Bobby"},
		{Key: teamKey(2), LeagueKey: LeagueKeyDemo2024, Name: "Icebox Crushers", ManagerNames: "Becky"},
		{Key: teamKey(3), LeagueKey: LeagueKeyDemo2024, Name: "Average Joes", ManagerNames: "Peter"},
		{Key: teamKey(4), LeagueKey: LeagueKeyDemo2024, Name: "Globo Gym", ManagerNames: "White"},
		{Key: teamKey(5), LeagueKey: LeagueKeyDemo2024, Name: "Flying V", ManagerNames: "Gordon"},
		{Key: teamKey(6), LeagueKey: LeagueKeyDemo2024, Name: "Hanson Brothers", ManagerNames: "Jack, Steve"},
	}
}

func SeedMatchups() ([]matchup.Entry, []matchup.Meta) {
	var entries []matchup.Entry
	var meta []matchup.Meta

	pair := func(week, matchupID, a int, aPts float64, b int, bPts float64) {
		aStatus, bStatus := "win", "loss"
		if bPts > aPts {
			aStatus, bStatus = "loss", "win"
		}
		if aPts == bPts {
			aStatus, bStatus = "tie", "tie"
		}
		entries = append(entries,
			seedEntry(week, matchupID, a, aPts, aStatus),
			seedEntry(week, matchupID, b, bPts, bStatus),
		)
	}

	// Five regular season weeks, full round robin pairings.
	pair(1, 1, 1, 112.4, 2, 98.6)
	pair(1, 2, 3, 104.1, 4, 121.9)
	pair(1, 3, 5, 88.2, 6, 88.2)
	pair(2, 1, 1, 95.3, 3, 101.7)
	pair(2, 2, 2, 117.8, 5, 92.4)
	pair(2, 3, 4, 109.5, 6, 84.1)
	pair(3, 1, 1, 123.0, 4, 111.2)
	pair(3, 2, 2, 90.6, 6, 97.3)
	pair(3, 3, 3, 115.4, 5, 86.9)
	pair(4, 1, 1, 108.8, 5, 94.5)
	pair(4, 2, 2, 102.2, 3, 99.8)
	pair(4, 3, 4, 118.6, 6, 79.4)
	pair(5, 1, 1, 97.1, 6, 91.0)
	pair(5, 2, 2, 105.9, 4, 113.3)
	pair(5, 3, 3, 110.2, 5, 83.7)

	// Week 6: playoff semifinals plus the consolation opener.
	pair(6, 1, 1, 119.4, 3, 103.6)
	pair(6, 2, 4, 114.7, 2, 96.2)
	pair(6, 3, 5, 91.8, 6, 87.5)

	// Week 7: championship, third place, and the consolation final.
	pair(7, 1, 4, 122.1, 1, 116.9)
	pair(7, 2, 3, 107.4, 2, 101.3)
	pair(7, 3, 5, 95.6, 6, 90.2)

	for week := 6; week <= 7; week++ {
		for matchupID := 1; matchupID <= 3; matchupID++ {
			meta = append(meta, matchup.Meta{
				LeagueKey:     LeagueKeyDemo2024,
				Week:          week,
				MatchupID:     matchupID,
				IsPlayoffs:    true,
				IsConsolation: matchupID == 3,
			})
		}
	}

	return entries, meta
}

func SeedStandings() []standings.Row {
	rows := []standings.Row{
		{TeamKey: teamKey(4), Rank: 1, Wins: 4, Losses: 1, PointsFor: 574.5, PointsAgainst: 519.5},
		{TeamKey: teamKey(1), Rank: 2, Wins: 4, Losses: 1, PointsFor: 536.6, PointsAgainst: 497.0},
		{TeamKey: teamKey(2), Rank: 3, Wins: 3, Losses: 2, PointsFor: 515.1, PointsAgainst: 505.0},
		{TeamKey: teamKey(3), Rank: 4, Wins: 3, Losses: 2, PointsFor: 531.2, PointsAgainst: 487.1},
		{TeamKey: teamKey(6), Rank: 5, Wins: 1, Losses: 3, Ties: 1, PointsFor: 440.0, PointsAgainst: 514.8},
		{TeamKey: teamKey(5), Rank: 6, Wins: 0, Losses: 4, Ties: 1, PointsFor: 445.7, PointsAgainst: 519.7},
	}
	for idx := range rows {
		rows[idx].LeagueKey = LeagueKeyDemo2024
	}

	return rows
}

func SeedTransactions() ([]transaction.Transaction, []transaction.Participant) {
	txns := []transaction.Transaction{
		{Key: txnKey(1), LeagueKey: LeagueKeyDemo2024, Type: "add/drop", Timestamp: 1726427400},
		{Key: txnKey(2), LeagueKey: LeagueKeyDemo2024, Type: "add", Timestamp: 1726600200},
		{Key: txnKey(3), LeagueKey: LeagueKeyDemo2024, Type: "trade", Timestamp: 1727032200},
		{Key: txnKey(4), LeagueKey: LeagueKeyDemo2024, Type: "add/drop", Timestamp: 1727205000},
		{Key: txnKey(5), LeagueKey: LeagueKeyDemo2024, Type: "drop", Timestamp: 1727637000},
		{Key: txnKey(6), LeagueKey: LeagueKeyDemo2024, Type: "add/drop", Timestamp: 1728241800},
	}
	participants := []transaction.Participant{
		{TransactionKey: txnKey(1), PlayerKey: "449.p.30123", Type: "add", DestinationTeamKey: teamKey(3)},
		{TransactionKey: txnKey(1), PlayerKey: "449.p.30456", Type: "drop", SourceTeamKey: teamKey(3)},
		{TransactionKey: txnKey(2), PlayerKey: "449.p.31877", Type: "add", DestinationTeamKey: teamKey(5)},
		{TransactionKey: txnKey(3), PlayerKey: "449.p.28552", Type: "trade", SourceTeamKey: teamKey(1), DestinationTeamKey: teamKey(4)},
		{TransactionKey: txnKey(3), PlayerKey: "449.p.29240", Type: "trade", SourceTeamKey: teamKey(4), DestinationTeamKey: teamKey(1)},
		{TransactionKey: txnKey(4), PlayerKey: "449.p.32011", Type: "add", DestinationTeamKey: teamKey(2)},
		{TransactionKey: txnKey(4), PlayerKey: "449.p.30789", Type: "drop", SourceTeamKey: teamKey(2)},
		{TransactionKey: txnKey(5), PlayerKey: "449.p.27344", Type: "drop", SourceTeamKey: teamKey(6)},
		{TransactionKey: txnKey(6), PlayerKey: "449.p.33120", Type: "add", DestinationTeamKey: teamKey(4)},
		{TransactionKey: txnKey(6), PlayerKey: "449.p.29981", Type: "drop", SourceTeamKey: teamKey(4)},
	}

	return txns, participants
}

func seedEntry(week, matchupID, teamNum int, points float64, status string) matchup.Entry {
	pts := points
	return matchup.Entry{
		LeagueKey: LeagueKeyDemo2024,
		Week:      week,
		MatchupID: matchupID,
		TeamKey:   teamKey(teamNum),
		Points:    &pts,
		WinStatus: status,
	}
}

func teamKey(num int) string {
	return fmt.Sprintf("%s.t.%d", LeagueKeyDemo2024, num)
}

func txnKey(num int) string {
	return fmt.Sprintf("%s.tr.%d", LeagueKeyDemo2024, num)
}
