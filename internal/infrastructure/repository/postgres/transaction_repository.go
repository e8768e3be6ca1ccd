package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
	qb "github.com/riskibarqy/league-insights/internal/platform/querybuilder"
)

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) ListByLeague(ctx context.Context, leagueKey string) ([]transaction.Transaction, error) {
	query, args, err := qb.Select("*").From("transactions").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("occurred_at", "transaction_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transactions query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}

	out := make([]transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transaction.Transaction{
			Key:       row.TransactionKey,
			LeagueKey: row.LeagueKey,
			Type:      row.Type,
			Timestamp: row.Timestamp,
		})
	}

	return out, nil
}

func (r *TransactionRepository) ListParticipantsByLeague(ctx context.Context, leagueKey string) ([]transaction.Participant, error) {
	query, args, err := qb.Select("*").From("transaction_participants").
		Where(
			qb.Eq("league_key", leagueKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("transaction_key", "player_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transaction participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transaction participants: %w", err)
	}

	out := make([]transaction.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, transaction.Participant{
			TransactionKey:     row.TransactionKey,
			PlayerKey:          row.PlayerKey,
			Type:               row.Type,
			SourceTeamKey:      nullStringToString(row.SourceTeamKey),
			DestinationTeamKey: nullStringToString(row.DestinationTeamKey),
		})
	}

	return out, nil
}

func (r *TransactionRepository) ReplaceByLeague(ctx context.Context, leagueKey string, txns []transaction.Transaction, participants []transaction.Participant) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace transactions: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"transactions", "transaction_participants"} {
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

	for _, item := range txns {
		insertModel := transactionInsertModel{
			TransactionKey: item.Key,
			LeagueKey:      leagueKey,
			Type:           item.Type,
			Timestamp:      item.Timestamp,
		}
		query, args, err := qb.InsertModel("transactions", insertModel, `ON CONFLICT (transaction_key)
DO UPDATE SET
    type = EXCLUDED.type,
    occurred_at = EXCLUDED.occurred_at,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert transaction query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert transaction key=%s: %w", item.Key, err)
		}
	}

	for _, item := range participants {
		insertModel := participantInsertModel{
			TransactionKey:     item.TransactionKey,
			LeagueKey:          leagueKey,
			PlayerKey:          item.PlayerKey,
			Type:               item.Type,
			SourceTeamKey:      nullableString(item.SourceTeamKey),
			DestinationTeamKey: nullableString(item.DestinationTeamKey),
		}
		query, args, err := qb.InsertModel("transaction_participants", insertModel, `ON CONFLICT (transaction_key, player_key)
DO UPDATE SET
    type = EXCLUDED.type,
    source_team_key = EXCLUDED.source_team_key,
    destination_team_key = EXCLUDED.destination_team_key,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert transaction participant query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert transaction participant txn=%s player=%s: %w",
				item.TransactionKey, item.PlayerKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace transactions tx: %w", err)
	}
	return nil
}
