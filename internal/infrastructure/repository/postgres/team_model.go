package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID           int64          `db:"id"`
	TeamKey      string         `db:"team_key"`
	LeagueKey    string         `db:"league_key"`
	Name         string         `db:"name"`
	ManagerNames sql.NullString `db:"manager_names"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	TeamKey      string  `db:"team_key"`
	LeagueKey    string  `db:"league_key"`
	Name         string  `db:"name"`
	ManagerNames *string `db:"manager_names"`
}
