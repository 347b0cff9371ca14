package services

import (
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, WithShops(cfg.ShopNames))
	container.Cheque = NewChequeService(repos.ChequeRepo, WithChequeShops(cfg.ShopNames))
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.ChequeRepo)
	// Imports go through the transaction service so rows get the same checks as the API.
	container.Import = NewImportService(container.Transaction)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
