package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-insights/internal/domain/transaction"
)

type TransactionRepository struct {
	mu                   sync.RWMutex
	txnsByLeague         map[string][]transaction.Transaction
	participantsByLeague map[string][]transaction.Participant
	leagueByTxn          map[string]string
}

func NewTransactionRepository(txns []transaction.Transaction, participants []transaction.Participant) *TransactionRepository {
	repo := &TransactionRepository{
		txnsByLeague:         make(map[string][]transaction.Transaction),
		participantsByLeague: make(map[string][]transaction.Participant),
		leagueByTxn:          make(map[string]string),
	}
	for _, item := range txns {
		repo.txnsByLeague[item.LeagueKey] = append(repo.txnsByLeague[item.LeagueKey], item)
		repo.leagueByTxn[item.Key] = item.LeagueKey
	}
	for _, item := range participants {
		leagueKey := repo.leagueByTxn[item.TransactionKey]
		if leagueKey == "" {
			continue
		}
		repo.participantsByLeague[leagueKey] = append(repo.participantsByLeague[leagueKey], item)
	}

	return repo
}

func (r *TransactionRepository) ListByLeague(_ context.Context, leagueKey string) ([]transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txns := r.txnsByLeague[leagueKey]
	out := make([]transaction.Transaction, 0, len(txns))
	out = append(out, txns...)

	return out, nil
}

func (r *TransactionRepository) ListParticipantsByLeague(_ context.Context, leagueKey string) ([]transaction.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := r.participantsByLeague[leagueKey]
	out := make([]transaction.Participant, 0, len(participants))
	out = append(out, participants...)

	return out, nil
}

func (r *TransactionRepository) ReplaceByLeague(_ context.Context, leagueKey string, txns []transaction.Transaction, participants []transaction.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.txnsByLeague[leagueKey] {
		delete(r.leagueByTxn, item.Key)
	}

	outTxns := make([]transaction.Transaction, len(txns))
	copy(outTxns, txns)
	r.txnsByLeague[leagueKey] = outTxns
	for _, item := range outTxns {
		r.leagueByTxn[item.Key] = leagueKey
	}

	outParticipants := make([]transaction.Participant, len(participants))
	copy(outParticipants, participants)
	r.participantsByLeague[leagueKey] = outParticipants

	return nil
}
