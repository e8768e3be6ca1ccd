package season

import (
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
)

func sampleInput() Input {
	teams := []team.Team{
		{Key: "a", LeagueKey: "nfl.l.1", Name: "Alphas", ManagerNames: "Alice"},
		{Key: "b", LeagueKey: "nfl.l.1", Name: "Bravos", ManagerNames: "Bob"},
		{Key: "c", LeagueKey: "nfl.l.1", Name: "Chargers", ManagerNames: "Cleo"},
		{Key: "d", LeagueKey: "nfl.l.1", Name: "Drakes", ManagerNames: "Dana"},
	}
	matchups := []Matchup{
		regularMatchup(1, 1, "a", 100, "b", 90),
		regularMatchup(1, 2, "c", 80, "d", 70),
		regularMatchup(2, 1, "a", 110, "c", 95),
		regularMatchup(2, 2, "b", 85, "d", 60),
		playoffMatchup(15, 1, "a", 45, "b", 40),
		playoffMatchup(15, 2, "c", 50, "d", 48),
		playoffMatchup(16, 1, "a", 60, "c", 55),
		playoffMatchup(16, 2, "b", 30, "d", 20),
	}
	rows := []standings.Row{
		{LeagueKey: "nfl.l.1", TeamKey: "a", Rank: 1, Wins: 2, PointsFor: 210},
		{LeagueKey: "nfl.l.1", TeamKey: "b", Rank: 3, Wins: 1, Losses: 1, PointsFor: 175},
		{LeagueKey: "nfl.l.1", TeamKey: "c", Rank: 2, Wins: 1, Losses: 1, PointsFor: 175},
		{LeagueKey: "nfl.l.1", TeamKey: "d", Rank: 4, Losses: 2, PointsFor: 130},
	}

	return Input{
		Season:    "2024",
		LeagueKey: "nfl.l.1",
		Teams:     teams,
		Matchups:  matchups,
		Standings: rows,
		Transactions: []Transaction{
			{Key: "x1", Type: "trade", Timestamp: 1727740800, TeamKeys: []string{"a", "b"}},
			{Key: "x2", Type: "add", Timestamp: 1727740800, TeamKeys: []string{"c"}},
		},
	}
}

func TestBuildOverviewEndToEnd(t *testing.T) {
	out, err := BuildOverview(sampleInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Season != "2024" || out.LeagueKey != "nfl.l.1" {
		t.Fatalf("unexpected identity fields: %s %s", out.Season, out.LeagueKey)
	}
	if len(out.PlayoffBracket.Rounds) != 2 {
		t.Fatalf("expected 2 playoff rounds, got %d", len(out.PlayoffBracket.Rounds))
	}
	if len(out.ConsolationBracket.Rounds) != 0 {
		t.Fatalf("expected no consolation rounds, got %d", len(out.ConsolationBracket.Rounds))
	}

	wantPlaces := map[string]int{"a": 1, "c": 2, "b": 3, "d": 4}
	if len(out.FinalPlacements) != 4 {
		t.Fatalf("expected 4 placements, got %d", len(out.FinalPlacements))
	}
	for _, placement := range out.FinalPlacements {
		if wantPlaces[placement.TeamKey] != placement.FinalPlace {
			t.Fatalf("expected %s at %d, got %d", placement.TeamKey, wantPlaces[placement.TeamKey], placement.FinalPlace)
		}
	}
	if out.FinalPlacements[0].FinalLabel != "1st" {
		t.Fatalf("expected champion labeled 1st, got %s", out.FinalPlacements[0].FinalLabel)
	}

	if out.PlayoffBubble.PlayoffTeams != 4 {
		t.Fatalf("expected observed playoff field of 4, got %d", out.PlayoffBubble.PlayoffTeams)
	}
	if out.Snapshot.TotalPoints == nil {
		t.Fatal("expected snapshot totals with scored weeks")
	}
	if out.MedianRecord.Leader == nil || out.MedianRecord.Leader.TeamKey != "a" {
		t.Fatalf("expected a to lead the median standings, got %+v", out.MedianRecord.Leader)
	}
	if out.ActivityPulse.TotalTransactions != 2 || out.ActivityPulse.TotalTrades != 1 {
		t.Fatalf("unexpected activity pulse: %+v", out.ActivityPulse)
	}
}

func TestBuildOverviewDeterministic(t *testing.T) {
	first, err := BuildOverview(sampleInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := BuildOverview(sampleInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output across runs on identical input")
	}
}

func TestBuildOverviewNoTeams(t *testing.T) {
	_, err := BuildOverview(Input{Season: "2024", LeagueKey: "nfl.l.2"})
	if !errors.Is(err, ErrNoTeams) {
		t.Fatalf("expected ErrNoTeams, got %v", err)
	}
}

func TestBuildOverviewFallsBackToStandingsRoster(t *testing.T) {
	in := sampleInput()
	in.Teams = nil

	out, err := BuildOverview(in)
	if err != nil {
		t.Fatalf("expected standings keys to stand in for the roster, got %v", err)
	}
	if len(out.FinalPlacements) != 4 {
		t.Fatalf("expected 4 placements from standings roster, got %d", len(out.FinalPlacements))
	}
}

func TestBuildTeamSummaries(t *testing.T) {
	rows := BuildTeamSummaries(sampleInput())
	if len(rows) != 4 {
		t.Fatalf("expected 4 summary rows, got %d", len(rows))
	}
	if rows[0].TeamKey != "a" || rows[0].Rank != 1 {
		t.Fatalf("expected a ranked first, got %+v", rows[0])
	}
	if rows[0].Wins != 2 || rows[0].PointsFor != 210 {
		t.Fatalf("unexpected leader line: %+v", rows[0])
	}
	if rows[0].TotalMoves != 1 || rows[0].WaiverMoves != 0 {
		t.Fatalf("unexpected leader move counts: %+v", rows[0])
	}
	for _, row := range rows {
		if row.TeamKey == "c" && row.WaiverMoves != 1 {
			t.Fatalf("expected one waiver move for c, got %d", row.WaiverMoves)
		}
	}
}
