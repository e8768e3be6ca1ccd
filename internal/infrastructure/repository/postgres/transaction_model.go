package postgres

import (
	"database/sql"
	"time"
)

type transactionTableModel struct {
	ID             int64      `db:"id"`
	TransactionKey string     `db:"transaction_key"`
	LeagueKey      string     `db:"league_key"`
	Type           string     `db:"type"`
	Timestamp      int64      `db:"occurred_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type transactionInsertModel struct {
	TransactionKey string `db:"transaction_key"`
	LeagueKey      string `db:"league_key"`
	Type           string `db:"type"`
	Timestamp      int64  `db:"occurred_at"`
}

type participantTableModel struct {
	ID                 int64          `db:"id"`
	TransactionKey     string         `db:"transaction_key"`
	LeagueKey          string         `db:"league_key"`
	PlayerKey          string         `db:"player_key"`
	Type               string         `db:"type"`
	SourceTeamKey      sql.NullString `db:"source_team_key"`
	DestinationTeamKey sql.NullString `db:"destination_team_key"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}

type participantInsertModel struct {
	TransactionKey     string  `db:"transaction_key"`
	LeagueKey          string  `db:"league_key"`
	PlayerKey          string  `db:"player_key"`
	Type               string  `db:"type"`
	SourceTeamKey      *string `db:"source_team_key"`
	DestinationTeamKey *string `db:"destination_team_key"`
}
