package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	qb "github.com/riskibarqy/league-insights/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListByLeague(ctx context.Context, leagueKey string) ([]standings.Row, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("rank", "team_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Row{
			LeagueKey:     row.LeagueKey,
			TeamKey:       row.TeamKey,
			Rank:          row.Rank,
			Wins:          row.Wins,
			Losses:        row.Losses,
			Ties:          row.Ties,
			PointsFor:     row.PointsFor,
			PointsAgainst: row.PointsAgainst,
		})
	}

	return out, nil
}

func (r *StandingsRepository) ReplaceByLeague(ctx context.Context, leagueKey string, rows []standings.Row) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("standings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings: %w", err)
	}

	for _, item := range rows {
		insertModel := standingsInsertModel{
			LeagueKey:     leagueKey,
			TeamKey:       item.TeamKey,
			Rank:          item.Rank,
			Wins:          item.Wins,
			Losses:        item.Losses,
			Ties:          item.Ties,
			PointsFor:     item.PointsFor,
			PointsAgainst: item.PointsAgainst,
		}
		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (league_key, team_key)
DO UPDATE SET
    rank = EXCLUDED.rank,
    wins = EXCLUDED.wins,
    losses = EXCLUDED.losses,
    ties = EXCLUDED.ties,
    points_for = EXCLUDED.points_for,
    points_against = EXCLUDED.points_against,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert standings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standings team=%s: %w", item.TeamKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}
