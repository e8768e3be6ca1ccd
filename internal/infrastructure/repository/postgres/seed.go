package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-insights/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the dev sample league into an empty database so
// the API has data to serve on first boot. A non-empty leagues table
// leaves everything untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		if err := seedExec(ctx, tx, `
INSERT INTO leagues (league_key, name, season, game_code, num_teams)
VALUES (:league_key, :name, :season, :game_code, :num_teams)
ON CONFLICT (league_key) DO NOTHING`, map[string]any{
			"league_key": l.Key,
			"name":       l.Name,
			"season":     l.Season,
			"game_code":  l.GameCode,
			"num_teams":  l.NumTeams,
		}); err != nil {
			return fmt.Errorf("seed league %s: %w", l.Key, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (team_key, league_key, name, manager_names)
VALUES (:team_key, :league_key, :name, :manager_names)
ON CONFLICT (league_key, team_key) DO NOTHING`, map[string]any{
			"team_key":      t.Key,
			"league_key":    t.LeagueKey,
			"name":          t.Name,
			"manager_names": nullableString(t.ManagerNames),
		}); err != nil {
			return fmt.Errorf("seed team %s: %w", t.Key, err)
		}
	}

	entries, meta := memory.SeedMatchups()
	for _, e := range entries {
		if err := seedExec(ctx, tx, `
INSERT INTO matchup_entries (league_key, week, matchup_id, team_key, points, projected_points, win_status)
VALUES (:league_key, :week, :matchup_id, :team_key, :points, :projected_points, :win_status)
ON CONFLICT (league_key, week, matchup_id, team_key) DO NOTHING`, map[string]any{
			"league_key":       e.LeagueKey,
			"week":             e.Week,
			"matchup_id":       e.MatchupID,
			"team_key":         e.TeamKey,
			"points":           e.Points,
			"projected_points": e.ProjectedPoints,
			"win_status":       nullableString(e.WinStatus),
		}); err != nil {
			return fmt.Errorf("seed matchup entry week=%d team=%s: %w", e.Week, e.TeamKey, err)
		}
	}
	for _, m := range meta {
		if err := seedExec(ctx, tx, `
INSERT INTO matchup_meta (league_key, week, matchup_id, is_playoffs, is_consolation, winner_team_key)
VALUES (:league_key, :week, :matchup_id, :is_playoffs, :is_consolation, :winner_team_key)
ON CONFLICT (league_key, week, matchup_id) DO NOTHING`, map[string]any{
			"league_key":      m.LeagueKey,
			"week":            m.Week,
			"matchup_id":      m.MatchupID,
			"is_playoffs":     m.IsPlayoffs,
			"is_consolation":  m.IsConsolation,
			"winner_team_key": nullableString(m.WinnerTeamKey),
		}); err != nil {
			return fmt.Errorf("seed matchup meta week=%d matchup=%d: %w", m.Week, m.MatchupID, err)
		}
	}

	for _, row := range memory.SeedStandings() {
		if err := seedExec(ctx, tx, `
INSERT INTO standings (league_key, team_key, rank, wins, losses, ties, points_for, points_against)
VALUES (:league_key, :team_key, :rank, :wins, :losses, :ties, :points_for, :points_against)
ON CONFLICT (league_key, team_key) DO NOTHING`, map[string]any{
			"league_key":     row.LeagueKey,
			"team_key":       row.TeamKey,
			"rank":           row.Rank,
			"wins":           row.Wins,
			"losses":         row.Losses,
			"ties":           row.Ties,
			"points_for":     row.PointsFor,
			"points_against": row.PointsAgainst,
		}); err != nil {
			return fmt.Errorf("seed standings team=%s: %w", row.TeamKey, err)
		}
	}

	txns, participants := memory.SeedTransactions()
	for _, item := range txns {
		if err := seedExec(ctx, tx, `
INSERT INTO transactions (transaction_key, league_key, type, occurred_at)
VALUES (:transaction_key, :league_key, :type, :occurred_at)
ON CONFLICT (transaction_key) DO NOTHING`, map[string]any{
			"transaction_key": item.Key,
			"league_key":      item.LeagueKey,
			"type":            item.Type,
			"occurred_at":     item.Timestamp,
		}); err != nil {
			return fmt.Errorf("seed transaction %s: %w", item.Key, err)
		}
	}
	for _, item := range participants {
		if err := seedExec(ctx, tx, `
INSERT INTO transaction_participants (transaction_key, league_key, player_key, type, source_team_key, destination_team_key)
VALUES (:transaction_key, :league_key, :player_key, :type, :source_team_key, :destination_team_key)
ON CONFLICT (transaction_key, player_key) DO NOTHING`, map[string]any{
			"transaction_key":      item.TransactionKey,
			"league_key":           memory.LeagueKeyDemo2024,
			"player_key":           item.PlayerKey,
			"type":                 item.Type,
			"source_team_key":      nullableString(item.SourceTeamKey),
			"destination_team_key": nullableString(item.DestinationTeamKey),
		}); err != nil {
			return fmt.Errorf("seed transaction participant txn=%s player=%s: %w", item.TransactionKey, item.PlayerKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, args map[string]any) error {
	sqlQuery, bound, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, bound...); err != nil {
		return err
	}

	return nil
}
