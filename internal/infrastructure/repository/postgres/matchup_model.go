package postgres

import (
	"database/sql"
	"time"
)

type matchupEntryTableModel struct {
	ID              int64          `db:"id"`
	LeagueKey       string         `db:"league_key"`
	Week            int            `db:"week"`
	MatchupID       int            `db:"matchup_id"`
	TeamKey         string         `db:"team_key"`
	Points          *float64       `db:"points"`
	ProjectedPoints *float64       `db:"projected_points"`
	WinStatus       sql.NullString `db:"win_status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type matchupEntryInsertModel struct {
	LeagueKey       string   `db:"league_key"`
	Week            int      `db:"week"`
	MatchupID       int      `db:"matchup_id"`
	TeamKey         string   `db:"team_key"`
	Points          *float64 `db:"points"`
	ProjectedPoints *float64 `db:"projected_points"`
	WinStatus       *string  `db:"win_status"`
}

type matchupMetaTableModel struct {
	ID            int64          `db:"id"`
	LeagueKey     string         `db:"league_key"`
	Week          int            `db:"week"`
	MatchupID     int            `db:"matchup_id"`
	IsPlayoffs    bool           `db:"is_playoffs"`
	IsConsolation bool           `db:"is_consolation"`
	WinnerTeamKey sql.NullString `db:"winner_team_key"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

type matchupMetaInsertModel struct {
	LeagueKey     string  `db:"league_key"`
	Week          int     `db:"week"`
	MatchupID     int     `db:"matchup_id"`
	IsPlayoffs    bool    `db:"is_playoffs"`
	IsConsolation bool    `db:"is_consolation"`
	WinnerTeamKey *string `db:"winner_team_key"`
}
