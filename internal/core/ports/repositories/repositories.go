package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	ChequeRepo      ChequeRepositoryFacade
	UserRepo        UserRepositoryFacade

	// Ping checks the backing store is reachable.
	Ping func(ctx context.Context) error
}
