package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-insights/internal/domain/season"
	"github.com/riskibarqy/league-insights/internal/platform/id"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
)

// OverviewWriter persists a derived overview artifact outside the
// request path, typically as a JSON file for the static site.
type OverviewWriter interface {
	WriteOverview(ctx context.Context, leagueKey string, overview season.Overview) error
}

type ExportInput struct {
	// LeagueKeys selects the leagues to export. Empty means every
	// known league.
	LeagueKeys []string
	MaxWorkers int
}

type ExportResult struct {
	RunID        string             `json:"run_id"`
	LeagueCount  int                `json:"league_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	SkippedCount int                `json:"skipped_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []ExportTaskResult `json:"tasks"`
}

type ExportTaskResult struct {
	LeagueKey  string `json:"league_key"`
	Status     string `json:"status"`
	Placements int    `json:"placements"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	exportStatusSuccess = "success"
	exportStatusFailed  = "failed"
	exportStatusSkipped = "skipped"

	maxExportWorkers = 4
)

// ExportService recomputes overviews for a batch of leagues on a
// bounded worker pool.
type ExportService struct {
	overviews      *OverviewService
	leagues        *LeagueService
	writer         OverviewWriter
	ids            id.Generator
	defaultWorkers int
	logger         *logging.Logger
}

func NewExportService(
	overviews *OverviewService,
	leagues *LeagueService,
	writer OverviewWriter,
	ids id.Generator,
	defaultWorkers int,
	logger *logging.Logger,
) *ExportService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if defaultWorkers < 1 {
		defaultWorkers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ExportService{
		overviews:      overviews,
		leagues:        leagues,
		writer:         writer,
		ids:            ids,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

func (s *ExportService) ExportOverviews(ctx context.Context, input ExportInput) (ExportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportOverviews")
	defer span.End()

	if s.overviews == nil {
		return ExportResult{}, fmt.Errorf("%w: overview service is not configured", ErrDependencyUnavailable)
	}

	leagueKeys, err := s.resolveExportTargets(ctx, input.LeagueKeys)
	if err != nil {
		return ExportResult{}, err
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return ExportResult{}, fmt.Errorf("generate export run id: %w", err)
	}

	workerCount := normalizeExportWorkerCount(input.MaxWorkers, s.defaultWorkers, len(leagueKeys))
	result := ExportResult{
		RunID:       runID,
		LeagueCount: len(leagueKeys),
		WorkerCount: workerCount,
		Tasks:       make([]ExportTaskResult, 0, len(leagueKeys)),
	}
	if len(leagueKeys) == 0 {
		return result, nil
	}

	results := make(chan ExportTaskResult, len(leagueKeys))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ExportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, leagueKey := range leagueKeys {
		leagueKey := leagueKey
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ExportTaskResult{LeagueKey: leagueKey}

			placements, status, message := s.runExportTask(ctx, leagueKey)
			row.Placements = placements
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case exportStatusSuccess:
				successCount.Add(1)
			case exportStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return ExportResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].LeagueKey < result.Tasks[j].LeagueKey
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	s.logger.InfoContext(ctx, "export run finished",
		"run_id", runID,
		"leagues", result.LeagueCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)
	return result, nil
}

func (s *ExportService) runExportTask(ctx context.Context, leagueKey string) (int, string, string) {
	overview, err := s.overviews.GetLeagueOverview(ctx, leagueKey)
	if err != nil {
		return 0, exportStatusFailed, err.Error()
	}
	if len(overview.FinalPlacements) == 0 {
		return 0, exportStatusSkipped, "no placements derived for league"
	}

	if s.writer != nil {
		if err := s.writer.WriteOverview(ctx, leagueKey, overview); err != nil {
			return 0, exportStatusFailed, fmt.Sprintf("write overview league=%s: %v", leagueKey, err)
		}
	}

	return len(overview.FinalPlacements), exportStatusSuccess, ""
}

func (s *ExportService) resolveExportTargets(ctx context.Context, requested []string) ([]string, error) {
	seen := make(map[string]struct{}, len(requested))
	out := make([]string, 0, len(requested))
	for _, key := range requested {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	if len(out) > 0 {
		sort.Strings(out)
		return out, nil
	}

	if s.leagues == nil {
		return nil, fmt.Errorf("%w: league service is not configured", ErrDependencyUnavailable)
	}
	leagues, err := s.leagues.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve export targets: %w", err)
	}
	for _, lg := range leagues {
		out = append(out, lg.Key)
	}
	sort.Strings(out)
	return out, nil
}

func normalizeExportWorkerCount(value int, fallback int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = fallback
	}
	if value <= 0 {
		value = 1
	}
	if value > maxExportWorkers {
		value = maxExportWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
