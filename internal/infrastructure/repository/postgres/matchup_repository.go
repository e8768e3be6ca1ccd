package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	qb "github.com/riskibarqy/league-insights/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListEntriesByLeague(ctx context.Context, leagueKey string) ([]matchup.Entry, error) {
	query, args, err := qb.Select("*").From("matchup_entries").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("week", "matchup_id", "team_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchup entries query: %w", err)
	}

	var rows []matchupEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchup entries: %w", err)
	}

	out := make([]matchup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Entry{
			LeagueKey:       row.LeagueKey,
			Week:            row.Week,
			MatchupID:       row.MatchupID,
			TeamKey:         row.TeamKey,
			Points:          row.Points,
			ProjectedPoints: row.ProjectedPoints,
			WinStatus:       nullStringToString(row.WinStatus),
		})
	}

	return out, nil
}

func (r *MatchupRepository) ListMetaByLeague(ctx context.Context, leagueKey string) ([]matchup.Meta, error) {
	query, args, err := qb.Select("*").From("matchup_meta").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("week", "matchup_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchup meta query: %w", err)
	}

	var rows []matchupMetaTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchup meta: %w", err)
	}

	out := make([]matchup.Meta, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Meta{
			LeagueKey:     row.LeagueKey,
			Week:          row.Week,
			MatchupID:     row.MatchupID,
			IsPlayoffs:    row.IsPlayoffs,
			IsConsolation: row.IsConsolation,
			WinnerTeamKey: nullStringToString(row.WinnerTeamKey),
		})
	}

	return out, nil
}

func (r *MatchupRepository) ReplaceByLeague(ctx context.Context, leagueKey string, entries []matchup.Entry, meta []matchup.Meta) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace matchups: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"matchup_entries", "matchup_meta"} {
		clearQuery, clearArgs, err := qb.Update(table).
			SetExpr("deleted_at", "NOW()").
			Where(
				qb.Eq("league_key", leagueKey),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, item := range entries {
		insertModel := matchupEntryInsertModel{
			LeagueKey:       leagueKey,
			Week:            item.Week,
			MatchupID:       item.MatchupID,
			TeamKey:         item.TeamKey,
			Points:          item.Points,
			ProjectedPoints: item.ProjectedPoints,
			WinStatus:       nullableString(item.WinStatus),
		}
		query, args, err := qb.InsertModel("matchup_entries", insertModel, `ON CONFLICT (league_key, week, matchup_id, team_key)
DO UPDATE SET
    points = EXCLUDED.points,
    projected_points = EXCLUDED.projected_points,
    win_status = EXCLUDED.win_status,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert matchup entry query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert matchup entry week=%d matchup=%d team=%s: %w",
				item.Week, item.MatchupID, item.TeamKey, err)
		}
	}

	for _, item := range meta {
		insertModel := matchupMetaInsertModel{
			LeagueKey:     leagueKey,
			Week:          item.Week,
			MatchupID:     item.MatchupID,
			IsPlayoffs:    item.IsPlayoffs,
			IsConsolation: item.IsConsolation,
			WinnerTeamKey: nullableString(item.WinnerTeamKey),
		}
		query, args, err := qb.InsertModel("matchup_meta", insertModel, `ON CONFLICT (league_key, week, matchup_id)
DO UPDATE SET
    is_playoffs = EXCLUDED.is_playoffs,
    is_consolation = EXCLUDED.is_consolation,
    winner_team_key = EXCLUDED.winner_team_key,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert matchup meta query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert matchup meta week=%d matchup=%d: %w", item.Week, item.MatchupID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace matchups tx: %w", err)
	}
	return nil
}
