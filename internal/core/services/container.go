package services

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

// NewServiceContainer wires every service to its repository
func NewServiceContainer(repos *portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, options...),
		Summary:     NewSummaryService(repos.SummaryRepo, options...),
	}
}
