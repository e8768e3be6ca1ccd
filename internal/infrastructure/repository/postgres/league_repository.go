package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-insights/internal/domain/league"
	qb "github.com/riskibarqy/league-insights/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByKey(ctx context.Context, leagueKey string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by key query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by key: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) UpsertBatch(ctx context.Context, leagues []league.League) error {
	if len(leagues) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert leagues: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range leagues {
		insertModel := leagueInsertModel{
			LeagueKey: item.Key,
			Name:      item.Name,
			Season:    item.Season,
			GameCode:  item.GameCode,
			NumTeams:  item.NumTeams,
		}
		query, args, err := qb.InsertModel("leagues", insertModel, `ON CONFLICT (league_key)
DO UPDATE SET
    name = EXCLUDED.name,
    season = EXCLUDED.season,
    game_code = EXCLUDED.game_code,
    num_teams = EXCLUDED.num_teams,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert league query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert league key=%s: %w", item.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert leagues tx: %w", err)
	}
	return nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		Key:      row.LeagueKey,
		Name:     row.Name,
		Season:   row.Season,
		GameCode: row.GameCode,
		NumTeams: row.NumTeams,
	}
}
