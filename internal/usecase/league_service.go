package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/platform/cache"
)

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	store      *cache.Store
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, store *cache.Store) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		store:      store,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		leagues, err := s.leagueRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list leagues: %w", err)
		}
		return leagues, nil
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]league.League), nil
	}

	value, err := s.store.GetOrLoad(ctx, leaguesCacheKey, load)
	if err != nil {
		return nil, err
	}
	leagues, ok := value.([]league.League)
	if !ok {
		return nil, fmt.Errorf("unexpected cached leagues type %T", value)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueKey string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return league.League{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	lg, found, err := s.leagueRepo.GetByKey(ctx, leagueKey)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueKey)
	}

	return lg, nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueKey string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeamsByLeague")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByKey(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueKey)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}
