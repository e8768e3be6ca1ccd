package season

import (
	"testing"
	"time"

	"github.com/riskibarqy/league-insights/internal/domain/standings"
)

func TestBuildSnapshotAndBalance(t *testing.T) {
	matchups := []Matchup{
		regularMatchup(1, 1, "a", 100, "b", 92),  // margin 8, close
		regularMatchup(2, 1, "a", 130, "b", 100), // margin 30
	}

	rs := newRegularSeason(matchups)
	snap := buildSnapshot(rs)
	if snap.TotalPoints == nil || *snap.TotalPoints != 422 {
		t.Fatalf("expected total points 422, got %v", snap.TotalPoints)
	}
	if snap.AvgWeeklyPoints == nil || *snap.AvgWeeklyPoints != 105.5 {
		t.Fatalf("expected avg weekly points 105.5, got %v", snap.AvgWeeklyPoints)
	}
	if snap.ClosestMargin == nil || *snap.ClosestMargin != 8 {
		t.Fatalf("expected closest margin 8, got %v", snap.ClosestMargin)
	}
	if snap.BlowoutMargin == nil || *snap.BlowoutMargin != 30 {
		t.Fatalf("expected blowout margin 30, got %v", snap.BlowoutMargin)
	}

	balance := buildCompetitiveBalance(rs)
	if balance == nil {
		t.Fatal("expected competitive balance with margins present")
	}
	if balance.MedianMargin != 19 {
		t.Fatalf("expected median margin 19, got %v", balance.MedianMargin)
	}
	if balance.CloseGames != 1 {
		t.Fatalf("expected 1 close game, got %d", balance.CloseGames)
	}
	if balance.CloseGameRate == nil || *balance.CloseGameRate != 0.5 {
		t.Fatalf("expected close game rate 0.5, got %v", balance.CloseGameRate)
	}

	if buildCompetitiveBalance(newRegularSeason(nil)) != nil {
		t.Fatal("expected nil competitive balance without margins")
	}
}

func TestWalkRunningSeasonUpsets(t *testing.T) {
	teamKeys := []string{"a", "b", "c", "d"}
	matchups := []Matchup{
		// week 1: records are equal everywhere, games count but no upset
		regularMatchup(1, 1, "a", 100, "b", 90),
		regularMatchup(1, 2, "c", 80, "d", 70),
		// week 2: winless b beats unbeaten a -> upset; c beats winless d -> not
		regularMatchup(2, 1, "b", 95, "a", 85),
		regularMatchup(2, 2, "c", 90, "d", 60),
		// week 3: a tie never joins the decisive-game denominator
		{Week: 3, MatchupID: 1, Sides: []Side{
			{TeamKey: "a", Points: fp(88.4)},
			{TeamKey: "b", Points: fp(88.4)},
		}},
	}

	rs := newRegularSeason(matchups)
	walk := walkRunningSeason(rs, teamKeys, 2)

	if walk.games != 4 {
		t.Fatalf("expected 4 decisive games, got %d", walk.games)
	}
	if walk.upsets != 1 {
		t.Fatalf("expected exactly 1 upset, got %d", walk.upsets)
	}
}

func TestWalkRunningSeasonWeeksInSpot(t *testing.T) {
	teamKeys := []string{"a", "b", "c", "d"}
	matchups := []Matchup{
		regularMatchup(1, 1, "a", 100, "b", 90),
		regularMatchup(1, 2, "c", 80, "d", 70),
		regularMatchup(2, 1, "a", 100, "c", 90),
		regularMatchup(2, 2, "b", 80, "d", 70),
	}

	rs := newRegularSeason(matchups)
	walk := walkRunningSeason(rs, teamKeys, 2)

	if walk.weeksInSpot["a"] != 2 {
		t.Fatalf("expected a in a playoff spot both weeks, got %d", walk.weeksInSpot["a"])
	}
	if walk.weeksInSpot["d"] != 0 {
		t.Fatalf("expected d never in a playoff spot, got %d", walk.weeksInSpot["d"])
	}
}

func TestBuildPlayoffBubble(t *testing.T) {
	matchups := []Matchup{
		// observed playoff field: a and c
		playoffMatchup(15, 1, "a", 45, "c", 40),
	}
	rows := map[string]standings.Row{
		"a": {TeamKey: "a", Rank: 1, PointsFor: 1200},
		"c": {TeamKey: "c", Rank: 2, PointsFor: 1100.5},
		"b": {TeamKey: "b", Rank: 3, PointsFor: 1090.25},
		"d": {TeamKey: "d", Rank: 4, PointsFor: 900},
	}

	rs := newRegularSeason(matchups)
	bubble := buildPlayoffBubble(rs, rows, TeamInfo{}, 2, seasonWalk{weeksInSpot: map[string]int{"a": 3, "c": 2}})

	if bubble.LastSeed == nil || bubble.LastSeed.TeamKey != "c" {
		t.Fatalf("expected c as last seed, got %+v", bubble.LastSeed)
	}
	if bubble.FirstOut == nil || bubble.FirstOut.TeamKey != "b" {
		t.Fatalf("expected b as first out, got %+v", bubble.FirstOut)
	}
	if bubble.PointsGap == nil || *bubble.PointsGap != 10.25 {
		t.Fatalf("expected points gap 10.25, got %v", bubble.PointsGap)
	}
	if len(bubble.WeeksInSpot) != 2 || bubble.WeeksInSpot[0].TeamKey != "a" {
		t.Fatalf("expected weeks-in-spot ordered by weeks desc, got %+v", bubble.WeeksInSpot)
	}
}

func TestBuildPlayoffBubbleWithoutStandings(t *testing.T) {
	rs := newRegularSeason(nil)
	bubble := buildPlayoffBubble(rs, nil, TeamInfo{}, 4, seasonWalk{weeksInSpot: map[string]int{}})

	if bubble.LastSeed != nil || bubble.FirstOut != nil || bubble.PointsGap != nil {
		t.Fatal("expected null bubble boundary without standings rows")
	}
	if bubble.PlayoffTeams != 4 {
		t.Fatalf("expected playoff team count carried through, got %d", bubble.PlayoffTeams)
	}
}

func TestBuildScoringTrend(t *testing.T) {
	matchups := []Matchup{
		regularMatchup(2, 1, "a", 100, "b", 90),
		regularMatchup(1, 1, "a", 80, "b", 70),
	}

	trend := buildScoringTrend(newRegularSeason(matchups))
	if len(trend) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(trend))
	}
	if trend[0].Week != 1 || trend[0].AvgPoints != 75 {
		t.Fatalf("unexpected first trend point: %+v", trend[0])
	}
	if trend[1].Week != 2 || trend[1].AvgPoints != 95 {
		t.Fatalf("unexpected second trend point: %+v", trend[1])
	}
}

func TestBuildActivityPulse(t *testing.T) {
	monday := time.Date(2024, 10, 7, 12, 0, 0, 0, time.UTC) // ISO week 2024-W41
	nextWeek := monday.AddDate(0, 0, 7)

	txns := []Transaction{
		{Key: "x1", Type: "trade", Timestamp: monday.Unix(), TeamKeys: []string{"a", "b"}},
		{Key: "x2", Type: "add", Timestamp: monday.Unix(), TeamKeys: []string{"c"}},
		{Key: "x3", Type: "drop", Timestamp: nextWeek.Unix(), TeamKeys: []string{"a"}},
		{Key: "x4", Type: "add", Timestamp: 0, TeamKeys: []string{"d"}}, // no timestamp, no week bucket
	}

	pulse := buildActivityPulse(txns)
	if pulse.TotalTransactions != 4 {
		t.Fatalf("expected 4 transactions, got %d", pulse.TotalTransactions)
	}
	if pulse.TotalTrades != 1 {
		t.Fatalf("expected 1 trade, got %d", pulse.TotalTrades)
	}
	if pulse.BusiestWeek == nil || *pulse.BusiestWeek != "2024-W41" {
		t.Fatalf("expected busiest week 2024-W41, got %v", pulse.BusiestWeek)
	}
	if pulse.BusiestTransactions == nil || *pulse.BusiestTransactions != 2 {
		t.Fatalf("expected 2 transactions in the busiest week, got %v", pulse.BusiestTransactions)
	}
	if pulse.BusiestTeams == nil || *pulse.BusiestTeams != 3 {
		t.Fatalf("expected 3 distinct teams in the busiest week, got %v", pulse.BusiestTeams)
	}
}

func TestBuildActivityPulseBusiestTieKeepsEarliestWeek(t *testing.T) {
	week1 := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)  // 2024-W36
	week2 := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC) // 2024-W38

	pulse := buildActivityPulse([]Transaction{
		{Key: "x1", Type: "add", Timestamp: week2.Unix()},
		{Key: "x2", Type: "add", Timestamp: week1.Unix()},
	})
	if pulse.BusiestWeek == nil || *pulse.BusiestWeek != "2024-W36" {
		t.Fatalf("expected the earliest tied week, got %v", pulse.BusiestWeek)
	}
}

func TestBuildActivityPulseEmpty(t *testing.T) {
	pulse := buildActivityPulse(nil)
	if pulse.BusiestWeek != nil || pulse.BusiestTransactions != nil || pulse.BusiestTeams != nil {
		t.Fatal("expected null busiest-week fields without transactions")
	}
}
