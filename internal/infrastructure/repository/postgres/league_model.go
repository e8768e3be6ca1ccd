package postgres

import "time"

type leagueTableModel struct {
	ID        int64      `db:"id"`
	LeagueKey string     `db:"league_key"`
	Name      string     `db:"name"`
	Season    string     `db:"season"`
	GameCode  string     `db:"game_code"`
	NumTeams  int        `db:"num_teams"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	LeagueKey string `db:"league_key"`
	Name      string `db:"name"`
	Season    string `db:"season"`
	GameCode  string `db:"game_code"`
	NumTeams  int    `db:"num_teams"`
}
