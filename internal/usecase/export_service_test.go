package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/season"
)

type fakeOverviewWriter struct {
	mu      sync.Mutex
	written map[string]season.Overview
}

func (f *fakeOverviewWriter) WriteOverview(_ context.Context, leagueKey string, overview season.Overview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.written == nil {
		f.written = make(map[string]season.Overview)
	}
	f.written[leagueKey] = overview
	return nil
}

type staticIDGenerator struct{ id string }

func (g staticIDGenerator) NewID() (string, error) { return g.id, nil }

func TestExportService_ExportOverviews(t *testing.T) {
	t.Parallel()

	leagueRepo, teamRepo, matchupRepo, standingsRepo, txnRepo := seedOverviewRepos()
	overviews := NewOverviewService(leagueRepo, teamRepo, matchupRepo, standingsRepo, txnRepo, nil, nil)
	leagues := NewLeagueService(leagueRepo, teamRepo, nil)
	writer := &fakeOverviewWriter{}
	service := NewExportService(overviews, leagues, writer, staticIDGenerator{id: "run-1"}, 0, nil)

	got, err := service.ExportOverviews(context.Background(), ExportInput{
		LeagueKeys: []string{testLeagueKey, "449.l.9999"},
		MaxWorkers: 2,
	})
	if err != nil {
		t.Fatalf("ExportOverviews error: %v", err)
	}

	if got.RunID != "run-1" {
		t.Fatalf("unexpected run id %q", got.RunID)
	}
	if got.LeagueCount != 2 || got.SuccessCount != 1 || got.FailedCount != 1 || got.SkippedCount != 0 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("expected 2 task rows, got %d", len(got.Tasks))
	}

	// Rows come back sorted by league key regardless of completion order.
	if got.Tasks[0].LeagueKey != testLeagueKey || got.Tasks[0].Status != exportStatusSuccess {
		t.Fatalf("unexpected first task row: %+v", got.Tasks[0])
	}
	if got.Tasks[0].Placements != 4 {
		t.Fatalf("expected 4 placements in task row, got %d", got.Tasks[0].Placements)
	}
	if got.Tasks[1].LeagueKey != "449.l.9999" || got.Tasks[1].Status != exportStatusFailed {
		t.Fatalf("unexpected second task row: %+v", got.Tasks[1])
	}

	if _, ok := writer.written[testLeagueKey]; !ok {
		t.Fatalf("expected overview artifact for %s", testLeagueKey)
	}
	if _, ok := writer.written["449.l.9999"]; ok {
		t.Fatal("failed league must not produce an artifact")
	}
}

func TestExportService_ExportOverviews_DefaultsToAllLeagues(t *testing.T) {
	t.Parallel()

	leagueRepo, teamRepo, matchupRepo, standingsRepo, txnRepo := seedOverviewRepos()
	leagueRepo.byKey["449.l.5678"] = league.League{Key: "449.l.5678", Name: "Second", Season: "2024"}

	overviews := NewOverviewService(leagueRepo, teamRepo, matchupRepo, standingsRepo, txnRepo, nil, nil)
	leagues := NewLeagueService(leagueRepo, teamRepo, nil)
	service := NewExportService(overviews, leagues, nil, nil, 0, nil)

	got, err := service.ExportOverviews(context.Background(), ExportInput{})
	if err != nil {
		t.Fatalf("ExportOverviews error: %v", err)
	}
	if got.LeagueCount != 2 {
		t.Fatalf("expected both known leagues targeted, got %d", got.LeagueCount)
	}
	if got.RunID == "" {
		t.Fatal("expected a generated run id")
	}
	// The league without any teams fails its overview build.
	if got.SuccessCount != 1 || got.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}

func TestNormalizeExportWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		value     int
		fallback  int
		taskCount int
		want      int
	}{
		{name: "zero tasks", value: 8, taskCount: 0, want: 1},
		{name: "zero value no fallback", value: 0, taskCount: 3, want: 1},
		{name: "zero value uses fallback", value: 0, fallback: 4, taskCount: 10, want: 4},
		{name: "capped", value: 16, taskCount: 10, want: maxExportWorkers},
		{name: "bounded by tasks", value: 3, taskCount: 2, want: 2},
		{name: "passthrough", value: 2, taskCount: 9, want: 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeExportWorkerCount(tc.value, tc.fallback, tc.taskCount); got != tc.want {
				t.Fatalf("normalizeExportWorkerCount(%d, %d, %d)=%d, want %d", tc.value, tc.fallback, tc.taskCount, got, tc.want)
			}
		})
	}
}
