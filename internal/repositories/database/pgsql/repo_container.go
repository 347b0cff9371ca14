package pgsql

import (
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository onto dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ChequeRepo:      newPgxChequeRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		Ping:            base.Ping,
	}
}
