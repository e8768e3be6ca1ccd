package postgres

import "time"

type standingsTableModel struct {
	ID            int64      `db:"id"`
	LeagueKey     string     `db:"league_key"`
	TeamKey       string     `db:"team_key"`
	Rank          int        `db:"rank"`
	Wins          int        `db:"wins"`
	Losses        int        `db:"losses"`
	Ties          int        `db:"ties"`
	PointsFor     float64    `db:"points_for"`
	PointsAgainst float64    `db:"points_against"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type standingsInsertModel struct {
	LeagueKey     string  `db:"league_key"`
	TeamKey       string  `db:"team_key"`
	Rank          int     `db:"rank"`
	Wins          int     `db:"wins"`
	Losses        int     `db:"losses"`
	Ties          int     `db:"ties"`
	PointsFor     float64 `db:"points_for"`
	PointsAgainst float64 `db:"points_against"`
}
