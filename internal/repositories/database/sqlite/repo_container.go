package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository onto db.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}

	return portsrepo.RepositoryProvider{
		TransactionRepo: newSQLiteTransactionRepository(db),
		ChequeRepo:      newSQLiteChequeRepository(db),
		UserRepo:        newSQLiteUserRepository(db),
		Ping:            base.Ping,
	}
}
